package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopzone.com/app/internal/modules/catalog"
)

var (
	mascara  = catalog.Product{ID: 1, Title: "Essence Mascara", Price: 9.99, Stock: 5}
	lipstick = catalog.Product{ID: 2, Title: "Red Lipstick", Price: 12.99, Stock: 68}
	soldOut  = catalog.Product{ID: 3, Title: "Ghost Phone", Price: 499, Stock: 0}
)

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	c := New()

	c.Add(mascara)
	c.Add(mascara)

	entries := c.Entries()
	require.Len(t, entries, 1, "one line per product id")
	assert.Equal(t, 2, entries[0].Qty)
	assert.Equal(t, "19.98", c.Subtotal().StringFixed(2))
}

func TestCart_InsertionOrderPreserved(t *testing.T) {
	c := New()

	c.Add(lipstick)
	c.Add(mascara)
	c.Add(lipstick)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].Product.ID)
	assert.Equal(t, int64(1), entries[1].Product.ID)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 2, c.Len())
}

func TestCart_RemoveDeletesWholeLine(t *testing.T) {
	c := New()
	c.Add(mascara)
	c.Add(mascara)
	c.Add(lipstick)

	c.Remove(mascara.ID)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, lipstick.ID, entries[0].Product.ID)
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	c := New()
	c.Add(mascara)

	c.Remove(999)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "9.99", c.Subtotal().StringFixed(2))
}

func TestCart_AddIgnoresStock(t *testing.T) {
	c := New()

	// zero-stock products are still addable; the UI disables the button
	c.Add(soldOut)

	assert.Equal(t, 1, c.Len())
}

func TestCart_SubtotalRounding(t *testing.T) {
	c := New()
	c.Add(catalog.Product{ID: 7, Title: "Odd Pricing", Price: 0.125})
	c.Add(catalog.Product{ID: 7, Title: "Odd Pricing", Price: 0.125})

	// 0.25 exactly, then a half-cent case via three units
	assert.Equal(t, "0.25", c.Subtotal().StringFixed(2))

	c.Add(catalog.Product{ID: 7})
	// 0.375 rounds half-up to 0.38
	assert.Equal(t, "0.38", c.Subtotal().StringFixed(2))
}

func TestCart_EmptySubtotal(t *testing.T) {
	c := New()
	assert.Equal(t, "0.00", c.Subtotal().StringFixed(2))
}

func TestBuildPage(t *testing.T) {
	c := New()
	c.Add(mascara)
	c.Add(mascara)
	c.Add(lipstick)

	vm := BuildPage(c)

	require.Len(t, vm.Items, 2)
	assert.Equal(t, "Essence Mascara", vm.Items[0].Title)
	assert.Equal(t, 2, vm.Items[0].Qty)
	assert.Equal(t, "9.99", vm.Items[0].UnitPrice)
	assert.Equal(t, "19.98", vm.Items[0].LineTotal)
	assert.Equal(t, 3, vm.Count)
	assert.Equal(t, "32.97", vm.Total)
}
