package session

import (
	"sync"
	"time"

	"shopzone.com/app/internal/modules/cart"
	"shopzone.com/app/internal/modules/catalog"
	"shopzone.com/app/internal/modules/wishlist"
	"shopzone.com/app/pkg/view"
)

// Session owns one visitor's interaction state: the cart and the wishlist.
// All access goes through methods holding the session mutex, so each
// storefront operation is atomic with respect to the others.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		cart:     cart.New(),
		wishlist: wishlist.New(),
		lastSeen: now,
	}
}

func (s *Session) AddToCart(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
}

func (s *Session) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

func (s *Session) CartPage() view.CartPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.BuildPage(s.cart)
}

// CartCount is the badge quantity shown in the header.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// InCart reports whether the product has a cart line.
func (s *Session) InCart(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.cart.Entries() {
		if e.Product.ID == productID {
			return true
		}
	}
	return false
}

// ToggleWishlist flips membership and reports the resulting state.
func (s *Session) ToggleWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Toggle(productID)
}

func (s *Session) Wishlisted(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Has(productID)
}

func (s *Session) WishlistIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.IDs()
}

func (s *Session) WishlistLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Len()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) staleAt(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
