package render

import "github.com/gin-gonic/gin"

// JSON writes the payload; the single output shape of the storefront API.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
