package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/config"
	"github.com/foresthealth/storefront-api/store"
)

// SetupRoutes is the single entry‐point that wires up the public storefront
// and admin route groups.
func SetupRoutes(r *gin.Engine, cfg *config.Config, s *store.Store) {
	// 1️⃣ Public storefront routes (no middleware)
	SetupPublicRoutes(r, cfg, s)

	// 2️⃣ Admin routes (Bearer‐token‐protected)
	SetupAdminRoutes(r, cfg, s)
}
