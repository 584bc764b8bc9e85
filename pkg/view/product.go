package view

// Stock status labels shown on the product card.
const (
	StockIn  = "in_stock"
	StockLow = "low_stock"
	StockOut = "out_of_stock"
)

type ProductCard struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	ListPrice   string  `json:"listPrice,omitempty"` // crossed-out price, discounted items only
	DiscountPct int     `json:"discountPct,omitempty"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
	StockStatus string  `json:"stockStatus"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Wishlisted  bool    `json:"wishlisted"`
}

// ProductsPage is the listing payload: the derived product sequence plus the
// chrome the storefront renders around it.
type ProductsPage struct {
	Loading       bool          `json:"loading"`
	Products      []ProductCard `json:"products"`
	Total         int           `json:"total"`
	Categories    []string      `json:"categories"`
	Message       string        `json:"message,omitempty"` // "No products found"
	CartCount     int           `json:"cartCount"`
	WishlistCount int           `json:"wishlistCount"`
	Flash         *Flash        `json:"flash,omitempty"`
}

type ProductPage struct {
	Product ProductCard `json:"product"`
	Flash   *Flash      `json:"flash,omitempty"`
}

type CategoriesPage struct {
	Categories []string `json:"categories"`
}
