package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks the back-office admin key on every request.
// The key comes from the ADMIN_KEY environment variable via main.
func AuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
