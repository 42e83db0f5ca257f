package systemController

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/store"
)

// Root is the liveness message shown at /.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Forest Health Goods API running"})
	}
}

// Hello is the static greeting used by the frontend connectivity check.
func Hello() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
	}
}

// TestDatabase reports best-effort store connectivity. Every failure becomes
// a status string; this endpoint never errors and is never authoritative.
func TestDatabase(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      "❌ Not Set",
			"database_name":     "❌ Not Set",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if os.Getenv("DATABASE_URL") != "" {
			response["database_url"] = "✅ Set"
		}
		if os.Getenv("DATABASE_NAME") != "" {
			response["database_name"] = "✅ Set"
		}

		if s.Available() {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"

			if names, err := s.CollectionNames(c.Request.Context()); err != nil {
				msg := err.Error()
				if len(msg) > 50 {
					msg = msg[:50]
				}
				response["database"] = "⚠️  Connected but Error: " + msg
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
