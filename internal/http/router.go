package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopzone.com/app/internal/http/flash"
	"shopzone.com/app/internal/http/handlers"
	"shopzone.com/app/internal/http/middleware"
	"shopzone.com/app/internal/http/sessioncookie"
	"shopzone.com/app/internal/modules/catalog"
	"shopzone.com/app/internal/modules/session"
)

const (
	sessionCookieName = "shopzone_session"
	flashCookieName   = "shopzone_flash"
)

type Config struct {
	CookieSecret []byte
	CookieSecure bool
}

// NewRouter wires the middleware chain and the storefront routes.
func NewRouter(logger *slog.Logger, store *catalog.Store, sessions *session.Store, cfg Config) *gin.Engine {
	r := gin.New()

	flashCodec := flash.NewCodec(cfg.CookieSecret, flashCookieName, cfg.CookieSecure)
	sessCodec := sessioncookie.New(cfg.CookieSecret, sessionCookieName, cfg.CookieSecure)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler wraps Recovery: a recovered panic is recorded via Fail and
	// written out here on the way back up.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.SessionMiddleware(middleware.SessionCfg{Store: sessions, Codec: sessCodec}))
	r.Use(middleware.CartCount())

	products := handlers.NewProductsHandler(store)
	cart := handlers.NewCartHandler(store, flashCodec)
	wishlist := handlers.NewWishlistHandler(store, flashCodec)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"catalog_loading": store.Loading(),
			"products":        store.Len(),
		})
	})

	r.GET("/products", products.List)
	r.GET("/products/:id", products.Show)
	r.GET("/categories", products.Categories)

	r.GET("/cart", cart.Get)
	r.POST("/cart/add", cart.Add)
	r.POST("/cart/items/remove", cart.Remove)

	r.GET("/wishlist", wishlist.Get)
	r.POST("/wishlist/toggle", wishlist.Toggle)

	return r
}
