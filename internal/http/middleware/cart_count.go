package middleware

import "github.com/gin-gonic/gin"

const cartCountKey = "cart_count"

// CartCount exposes the header badge quantity. Runs after SessionMiddleware;
// without a session the count is 0.
func CartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if sess, ok := CurrentSession(c); ok {
			n = sess.CartCount()
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
