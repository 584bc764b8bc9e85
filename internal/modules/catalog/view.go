package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortDefault    SortKey = "default"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortNameAsc    SortKey = "name-asc"
)

// Selection is the visitor's current listing state: search text, category
// tab and sort order.
type Selection struct {
	SearchTerm string
	Category   string
	Sort       SortKey
}

func DefaultSelection() Selection {
	return Selection{Category: "all", Sort: SortDefault}
}

// ComputeView derives the product sequence to render from the catalog
// snapshot and the selection. Pure: same inputs, same output, input slice
// untouched.
//
// A product is kept when the search term (case-insensitive) appears in its
// title or category — an empty term matches everything — and the category
// tab is "all" or equals the product's category. Sorting is stable; the
// default key preserves catalog order. An unknown key behaves as default,
// the HTTP layer rejects it earlier.
func ComputeView(products []Product, sel Selection) []Product {
	term := strings.ToLower(strings.TrimSpace(sel.SearchTerm))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, term) {
			continue
		}
		if sel.Category != "" && sel.Category != "all" && p.Category != sel.Category {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, sel.Sort)
	return out
}

func matchesSearch(p Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

func sortProducts(ps []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortRatingDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case SortNameAsc:
		// Collators carry internal buffers, so build one per call.
		c := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool {
			return c.CompareString(ps[i].Title, ps[j].Title) < 0
		})
	}
}
