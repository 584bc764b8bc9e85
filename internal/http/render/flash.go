package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopzone.com/app/internal/http/flash"
	"shopzone.com/app/internal/http/middleware"
	"shopzone.com/app/pkg/view"
)

// RedirectWithFlash sets the one-shot notification cookie and redirects;
// the target GET picks the flash up and embeds it in its payload.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
