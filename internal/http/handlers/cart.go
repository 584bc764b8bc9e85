package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shopzone.com/app/internal/http/flash"
	"shopzone.com/app/internal/http/middleware"
	"shopzone.com/app/internal/http/render"
	"shopzone.com/app/internal/modules/catalog"
	"shopzone.com/app/pkg/view"
)

// CartHandler handles cart operations (GET /cart, POST /cart/add,
// POST /cart/items/remove).
type CartHandler struct {
	Store *catalog.Store
	Flash *flash.Codec
}

func NewCartHandler(store *catalog.Store, flashCodec *flash.Codec) *CartHandler {
	return &CartHandler{Store: store, Flash: flashCodec}
}

// Add handles POST /cart/add: puts one unit of the product in the session
// cart and redirects to /cart. Out-of-stock products are accepted; the
// frontend disables the button, the cart itself enforces nothing.
func (h *CartHandler) Add(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not add to cart.")
		return
	}

	p, ok := h.Store.Product(id)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Product not found.")
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not add to cart.")
		return
	}

	sess.AddToCart(p)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, p.Title+" added to your cart")
}

// Remove handles POST /cart/items/remove: deletes the whole line. Removing
// an id that is not in the cart is not an error.
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Product not found.")
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update cart.")
		return
	}

	sess.RemoveFromCart(id)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashInfo, "Item removed from cart")
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		render.JSON(c, http.StatusOK, view.CartPage{Items: []view.CartItem{}, Total: "0.00"})
		return
	}

	page := sess.CartPage()
	page.Flash = middleware.GetFlash(c)
	render.JSON(c, http.StatusOK, page)
}

func parseProductID(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.PostForm("product_id"))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
