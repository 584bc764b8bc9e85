package cart

import (
	"github.com/shopspring/decimal"

	"shopzone.com/app/pkg/view"
)

// BuildPage maps the cart into its view model: lines in insertion order with
// per-line totals, the badge count and the rounded cart total.
func BuildPage(c *Cart) view.CartPage {
	entries := c.Entries()
	vm := view.CartPage{Items: make([]view.CartItem, 0, len(entries))}

	for _, e := range entries {
		unit := decimal.NewFromFloat(e.Product.Price)
		line := unit.Mul(decimal.NewFromInt(int64(e.Qty)))

		vm.Items = append(vm.Items, view.CartItem{
			ProductID: e.Product.ID,
			Title:     e.Product.Title,
			ImageURL:  e.Product.Image(),
			Qty:       e.Qty,
			UnitPrice: view.Price(unit.Round(2)),
			LineTotal: view.Price(line.Round(2)),
		})
	}

	vm.Count = c.Count()
	vm.Total = view.Price(c.Subtotal())
	return vm
}
