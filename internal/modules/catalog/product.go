package catalog

import "github.com/shopspring/decimal"

// Product is a read-only snapshot of one upstream catalog record.
// Price, discount, rating and stock are never mutated locally; there is no
// live inventory sync. Unknown fields in the payload are ignored.
type Product struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Category           string   `json:"category"`
	Brand              string   `json:"brand,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Images             []string `json:"images"`
}

// ListPrice derives the crossed-out pre-discount price as
// price / (1 - discount/100), rounded to 2 decimal places. The upstream API
// supplies no original price, so this stays an approximation.
func (p Product) ListPrice() decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	if p.DiscountPercentage <= 0 {
		return price.Round(2)
	}
	factor := decimal.NewFromInt(1).
		Sub(decimal.NewFromFloat(p.DiscountPercentage).Div(decimal.NewFromInt(100)))
	if factor.IsZero() {
		return price.Round(2)
	}
	return price.Div(factor).Round(2)
}

// Image returns the first catalog image URL, or "" when the product has none.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
