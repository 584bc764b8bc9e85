package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client fetches the product catalog from the upstream API.
type Client struct {
	url string
	hc  *http.Client
}

func NewClient(url string) *Client {
	return &Client{url: url, hc: &http.Client{}}
}

// productsPayload mirrors the upstream response envelope:
// {"products": [...], "total": n, ...} — only the products field matters.
type productsPayload struct {
	Products []Product `json:"products"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog API error: %d", res.StatusCode)
	}

	var payload productsPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog payload: %w", err)
	}
	return payload.Products, nil
}
