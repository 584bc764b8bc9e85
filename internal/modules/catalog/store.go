package catalog

import (
	"context"
	"log/slog"
	"sync"
)

// Fetcher is the upstream catalog source.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Store holds the in-memory catalog snapshot. The list is populated by a
// single Load at startup; there is no refresh, pagination or persistence.
type Store struct {
	fetcher Fetcher
	log     *slog.Logger

	mu         sync.RWMutex
	products   []Product
	categories []string
	loading    bool
}

func NewStore(f Fetcher, log *slog.Logger) *Store {
	return &Store{fetcher: f, log: log, loading: true}
}

// Load fetches the catalog once. On success the product list and category
// index are swapped in; on failure the list stays empty. Either way the
// loading flag is cleared and no error escapes — an empty storefront is the
// whole failure mode. A concurrent Load is last-write-wins.
func (s *Store) Load(ctx context.Context) {
	ps, err := s.fetcher.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "catalog_load_failed",
			slog.String("error", err.Error()),
		)
		return
	}
	s.products = ps
	s.categories = categoryIndex(ps)
	s.log.LogAttrs(ctx, slog.LevelInfo, "catalog_loaded",
		slog.Int("products", len(ps)),
		slog.Int("categories", len(s.categories)-1),
	)
}

// Products returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Product looks up a single product by id.
func (s *Store) Product(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns "all" followed by the distinct category labels in
// first-seen order from the product list.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.categories == nil {
		return []string{"all"}
	}
	return s.categories
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func categoryIndex(ps []Product) []string {
	out := []string{"all"}
	seen := map[string]struct{}{}
	for _, p := range ps {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
