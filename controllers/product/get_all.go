package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// GetProducts lists the catalog. When the store is unreachable it serves the
// built-in sample list so the storefront keeps rendering in demo/offline
// setups.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Available() {
			c.JSON(http.StatusOK, models.SampleProducts)
			return
		}

		var products []models.Product
		if err := s.FindAll(c.Request.Context(), store.Products, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
