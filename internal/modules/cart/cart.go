package cart

import (
	"github.com/shopspring/decimal"

	"shopzone.com/app/internal/modules/catalog"
)

// Entry is one cart line: a product snapshot and its quantity.
type Entry struct {
	Product catalog.Product
	Qty     int
}

// Cart holds a session's cart lines in insertion order. At most one entry
// exists per product id. Not safe for concurrent use on its own; the owning
// session serializes access.
type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add puts the product in the cart. An existing line gets its quantity
// incremented by one, otherwise a new line with quantity 1 is appended.
// Stock is deliberately not checked here; disabling the button on sold-out
// items is the frontend's call.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.entries {
		if c.entries[i].Product.ID == p.ID {
			c.entries[i].Qty++
			return
		}
	}
	c.entries = append(c.entries, Entry{Product: p, Qty: 1})
}

// Remove deletes the whole line for the product id. Removing an id that is
// not in the cart is a no-op, not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.entries {
		if c.entries[i].Product.ID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a copy of the cart lines in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.entries)
}

// Count is the total quantity across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, e := range c.entries {
		n += e.Qty
	}
	return n
}

// Subtotal is Σ price × qty over all lines, rounded to 2 decimal places.
// Rounding is half-up (decimal.Round: half rounds away from zero, and prices
// are non-negative).
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		line := decimal.NewFromFloat(e.Product.Price).Mul(decimal.NewFromInt(int64(e.Qty)))
		total = total.Add(line)
	}
	return total.Round(2)
}
