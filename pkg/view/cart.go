package view

type CartItem struct {
	ProductID int64  `json:"productId"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type CartPage struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"` // total quantity across lines
	Total string     `json:"total"`
	Flash *Flash     `json:"flash,omitempty"`
}

type WishlistPage struct {
	Products []ProductCard `json:"products"`
	Count    int           `json:"count"`
	Flash    *Flash        `json:"flash,omitempty"`
}
