package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// GetAllCategories returns every category. Unlike products there is no
// sample fallback; an unreachable store yields an empty list.
func GetAllCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Available() {
			c.JSON(http.StatusOK, []models.Category{})
			return
		}

		var categories []models.Category
		if err := s.FindAll(c.Request.Context(), store.Categories, &categories); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory inserts a new category. Admin only. Duplicate names and
// slugs are allowed.
func CreateCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		category := models.Category{
			Name:  input.Name,
			Slug:  input.Slug,
			Image: input.Image,
		}

		id, err := s.InsertOne(c.Request.Context(), store.Categories, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		oid, _ := store.ParseID(id)
		category.ID = oid
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory overwrites a category's fields from the payload. Admin only.
func UpdateCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := store.ParseID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var input models.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		var category models.Category
		if err := s.FindByID(c.Request.Context(), store.Categories, id, &category); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}

		category.Name = input.Name
		category.Slug = input.Slug
		category.Image = input.Image

		if err := s.ReplaceByID(c.Request.Context(), store.Categories, id, category); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category by id. Admin only. Products keep their
// free-text category label; nothing cascades.
func DeleteCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := store.ParseID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		if err := s.DeleteByID(c.Request.Context(), store.Categories, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
