package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// extra top-level and product fields must be ignored
		w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Essence Mascara", "category": "beauty",
				 "price": 9.99, "discountPercentage": 7.17, "rating": 4.94,
				 "stock": 5, "images": ["https://cdn.example/1.png"],
				 "sku": "RCH45Q1A", "weight": 2},
				{"id": 2, "title": "Red Lipstick", "category": "beauty",
				 "price": 12.99, "rating": 2.9, "stock": 68, "images": []}
			],
			"total": 2, "skip": 0, "limit": 30
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ps, err := c.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, int64(1), ps[0].ID)
	assert.Equal(t, "Essence Mascara", ps[0].Title)
	assert.Equal(t, 7.17, ps[0].DiscountPercentage)
	assert.Equal(t, "https://cdn.example/1.png", ps[0].Image())
	assert.Equal(t, "", ps[1].Image())
	assert.Zero(t, ps[1].DiscountPercentage)
}

func TestClient_FetchProductsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchProducts(context.Background())

	assert.Error(t, err)
}

func TestClient_FetchProductsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchProducts(context.Background())

	assert.Error(t, err)
}
