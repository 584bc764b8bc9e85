package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	products []Product
	err      error
}

func (f stubFetcher) FetchProducts(context.Context) ([]Product, error) {
	return f.products, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_LoadSuccess(t *testing.T) {
	ps := testProducts()
	s := NewStore(stubFetcher{products: ps}, discardLogger())

	assert.True(t, s.Loading())

	s.Load(context.Background())

	assert.False(t, s.Loading())
	assert.Equal(t, len(ps), s.Len())

	p, ok := s.Product(3)
	require.True(t, ok)
	assert.Equal(t, "Kitchen Knife", p.Title)
}

func TestStore_LoadFailure(t *testing.T) {
	s := NewStore(stubFetcher{err: errors.New("upstream down")}, discardLogger())

	s.Load(context.Background())

	assert.False(t, s.Loading(), "loading flag clears even on failure")
	assert.Zero(t, s.Len(), "product list stays empty")
	assert.Equal(t, []string{"all"}, s.Categories())
}

func TestStore_CategoriesFirstSeenOrder(t *testing.T) {
	s := NewStore(stubFetcher{products: testProducts()}, discardLogger())

	s.Load(context.Background())

	assert.Equal(t, []string{"all", "beauty", "kitchen", "smartphones"}, s.Categories())
}

func TestStore_ProductNotFound(t *testing.T) {
	s := NewStore(stubFetcher{products: testProducts()}, discardLogger())
	s.Load(context.Background())

	_, ok := s.Product(999)
	assert.False(t, ok)
}
