package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_ListPrice(t *testing.T) {
	t.Run("Discounted", func(t *testing.T) {
		p := Product{Price: 9.99, DiscountPercentage: 7.17}
		// 9.99 / (1 - 0.0717) = 10.7616... -> 10.76
		assert.Equal(t, "10.76", p.ListPrice().StringFixed(2))
	})

	t.Run("NoDiscount", func(t *testing.T) {
		p := Product{Price: 12.99}
		assert.Equal(t, "12.99", p.ListPrice().StringFixed(2))
	})

	t.Run("FullDiscountFallsBackToPrice", func(t *testing.T) {
		p := Product{Price: 5, DiscountPercentage: 100}
		assert.Equal(t, "5.00", p.ListPrice().StringFixed(2))
	})
}
