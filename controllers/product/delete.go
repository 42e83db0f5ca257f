package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/store"
)

// DeleteProduct removes a product by id. Admin only.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := store.ParseID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		if err := s.DeleteByID(c.Request.Context(), store.Products, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
