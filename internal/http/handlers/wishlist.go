package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopzone.com/app/internal/http/flash"
	"shopzone.com/app/internal/http/middleware"
	"shopzone.com/app/internal/http/render"
	"shopzone.com/app/internal/modules/catalog"
	"shopzone.com/app/pkg/view"
)

// WishlistHandler handles wishlist operations (GET /wishlist,
// POST /wishlist/toggle).
type WishlistHandler struct {
	Store *catalog.Store
	Flash *flash.Codec
}

func NewWishlistHandler(store *catalog.Store, flashCodec *flash.Codec) *WishlistHandler {
	return &WishlistHandler{Store: store, Flash: flashCodec}
}

// Toggle handles POST /wishlist/toggle: flips membership for the product and
// reports the action in the flash. Both directions are observable events.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not update wishlist.")
		return
	}

	p, ok := h.Store.Product(id)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Product not found.")
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not update wishlist.")
		return
	}

	if sess.ToggleWishlist(p.ID) {
		render.RedirectWithFlash(c, h.Flash, "/wishlist", view.FlashSuccess, p.Title+" added to wishlist")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/wishlist", view.FlashSuccess, p.Title+" removed from wishlist")
}

// Get handles GET /wishlist: the wishlisted products joined to the catalog.
// Ids whose products vanished from the catalog snapshot are skipped.
func (h *WishlistHandler) Get(c *gin.Context) {
	vm := view.WishlistPage{
		Products: []view.ProductCard{},
		Flash:    middleware.GetFlash(c),
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		render.JSON(c, http.StatusOK, vm)
		return
	}

	for _, id := range sess.WishlistIDs() {
		p, ok := h.Store.Product(id)
		if !ok {
			continue
		}
		vm.Products = append(vm.Products, mapProductCard(p, sess))
	}
	vm.Count = sess.WishlistLen()

	render.JSON(c, http.StatusOK, vm)
}
