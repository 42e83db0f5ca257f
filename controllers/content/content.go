package contentcontroller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// GetContent returns the singleton CMS record. An unreachable store falls
// back to the compiled-in defaults; a reachable store with no record is 404
// (seeding has not run).
func GetContent(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Available() {
			c.JSON(http.StatusOK, models.DefaultContent())
			return
		}

		var content models.Content
		if err := s.FindFirst(c.Request.Context(), store.Content, &content); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// UpdateContent merges the supplied fields into the existing record and
// returns the result. Admin only.
func UpdateContent(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ContentPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !s.Available() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Store unavailable"})
			return
		}

		var content models.Content
		if err := s.FindFirst(c.Request.Context(), store.Content, &content); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
			return
		}

		ApplyPatch(&content, patch)

		if err := s.ReplaceByID(c.Request.Context(), store.Content, content.ID.Hex(), content); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
			return
		}

		c.JSON(http.StatusOK, content)
	}
}

// ApplyPatch copies only the non-nil patch fields onto the record. Absent
// fields are untouched; there is no explicit null-out.
func ApplyPatch(content *models.Content, patch models.ContentPatch) {
	if patch.HeroTitle != nil {
		content.HeroTitle = *patch.HeroTitle
	}
	if patch.HeroSubtitle != nil {
		content.HeroSubtitle = *patch.HeroSubtitle
	}
	if patch.HeroCTAText != nil {
		content.HeroCTAText = *patch.HeroCTAText
	}
	if patch.HeroSecondaryCTAText != nil {
		content.HeroSecondaryCTAText = *patch.HeroSecondaryCTAText
	}
	if patch.HeroBadges != nil {
		content.HeroBadges = *patch.HeroBadges
	}
	if patch.HeroImage != nil {
		content.HeroImage = *patch.HeroImage
	}
	if patch.SplineURL != nil {
		content.SplineURL = *patch.SplineURL
	}
	if patch.TrustItems != nil {
		content.TrustItems = *patch.TrustItems
	}
	if patch.Testimonials != nil {
		content.Testimonials = *patch.Testimonials
	}
}

// SeedContent inserts the default record when the content collection is
// empty. Idempotent; failures are reported to the caller, which decides
// whether startup continues.
func SeedContent(ctx context.Context, s *store.Store) error {
	if !s.Available() {
		return nil
	}
	count, err := s.Count(ctx, store.Content)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.InsertOne(ctx, store.Content, models.DefaultContent())
	return err
}
