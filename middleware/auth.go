package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/config"
)

// RequireAdmin guards mutating catalog/content endpoints with the single
// shared admin token. A missing or non-Bearer header is 401, a well-formed
// header carrying the wrong token is 403.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must use the Bearer scheme"})
			c.Abort()
			return
		}

		if token != cfg.AdminToken {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid admin token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
