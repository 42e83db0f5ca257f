package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// CreateProduct inserts a new catalog product. Admin only.
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		product := models.Product{
			Title:       input.Title,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			Image:       input.Image,
			Badge:       input.Badge,
			InStock:     true,
		}
		if input.InStock != nil {
			product.InStock = *input.InStock
		}

		id, err := s.InsertOne(c.Request.Context(), store.Products, product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		oid, _ := store.ParseID(id)
		product.ID = oid
		c.JSON(http.StatusCreated, product)
	}
}
