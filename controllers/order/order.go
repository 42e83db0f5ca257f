package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// GetAllOrdersHandler lists every order for the admin dashboard. Orders are
// immutable after checkout, so this is read-only.
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		var orders []models.Order
		if err := s.FindAll(c.Request.Context(), store.Orders, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
