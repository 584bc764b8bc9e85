package view

import "github.com/shopspring/decimal"

// Price formats a decimal amount as a display string, e.g. "9.99".
// The upstream catalog carries a single implicit currency, so no symbol or
// code is attached here; that is the frontend's concern.
func Price(d decimal.Decimal) string {
	return d.StringFixed(2)
}
