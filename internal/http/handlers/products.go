package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shopzone.com/app/internal/http/middleware"
	"shopzone.com/app/internal/http/render"
	"shopzone.com/app/internal/http/validation"
	"shopzone.com/app/internal/modules/catalog"
	"shopzone.com/app/internal/modules/session"
	"shopzone.com/app/internal/shared/apperr"
	"shopzone.com/app/pkg/view"
)

// ProductsHandler serves the product listing, detail and category strip.
type ProductsHandler struct {
	store *catalog.Store
}

func NewProductsHandler(store *catalog.Store) *ProductsHandler {
	return &ProductsHandler{store: store}
}

type listQuery struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	Sort     string `form:"sort" binding:"omitempty,oneof=default price-asc price-desc rating-desc name-asc"`
}

// List handles GET /products: the filtered and sorted storefront grid.
func (h *ProductsHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fields := validation.FromBindError(err, &q)
		middleware.Fail(c, apperr.InvalidErr("Invalid product query.", fields))
		return
	}

	sess, _ := middleware.CurrentSession(c)

	vm := view.ProductsPage{
		Products:   []view.ProductCard{},
		Categories: h.store.Categories(),
		Flash:      middleware.GetFlash(c),
		CartCount:  middleware.GetCartCount(c),
	}
	if sess != nil {
		vm.WishlistCount = sess.WishlistLen()
	}

	if h.store.Loading() {
		vm.Loading = true
		render.JSON(c, http.StatusOK, vm)
		return
	}

	sel := catalog.DefaultSelection()
	sel.SearchTerm = q.Search
	if q.Category != "" {
		sel.Category = q.Category
	}
	if q.Sort != "" {
		sel.Sort = catalog.SortKey(q.Sort)
	}

	prods := catalog.ComputeView(h.store.Products(), sel)
	vm.Products = mapProductCards(prods, sess)
	vm.Total = len(prods)
	if len(prods) == 0 && h.store.Len() > 0 {
		vm.Message = "No products found"
	}

	render.JSON(c, http.StatusOK, vm)
}

// Show handles GET /products/:id.
func (h *ProductsHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product id.", nil))
		return
	}

	p, ok := h.store.Product(id)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	sess, _ := middleware.CurrentSession(c)
	render.JSON(c, http.StatusOK, view.ProductPage{
		Product: mapProductCard(p, sess),
		Flash:   middleware.GetFlash(c),
	})
}

// Categories handles GET /categories: "all" plus the catalog's labels in
// first-seen order.
func (h *ProductsHandler) Categories(c *gin.Context) {
	render.JSON(c, http.StatusOK, view.CategoriesPage{Categories: h.store.Categories()})
}

func mapProductCards(ps []catalog.Product, sess *session.Session) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(ps))
	for _, p := range ps {
		out = append(out, mapProductCard(p, sess))
	}
	return out
}

func mapProductCard(p catalog.Product, sess *session.Session) view.ProductCard {
	card := view.ProductCard{
		ID:          p.ID,
		Title:       p.Title,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       view.Price(decimal.NewFromFloat(p.Price).Round(2)),
		Rating:      p.Rating,
		Stock:       p.Stock,
		StockStatus: stockStatus(p.Stock),
		ImageURL:    p.Image(),
	}
	if p.DiscountPercentage > 0 {
		card.ListPrice = view.Price(p.ListPrice())
		card.DiscountPct = int(math.Round(p.DiscountPercentage))
	}
	if sess != nil {
		card.Wishlisted = sess.Wishlisted(p.ID)
	}
	return card
}

// stockStatus mirrors the storefront badges: more than 10 in stock, 1-10 low,
// 0 sold out.
func stockStatus(stock int) string {
	switch {
	case stock > 10:
		return view.StockIn
	case stock > 0:
		return view.StockLow
	default:
		return view.StockOut
	}
}
