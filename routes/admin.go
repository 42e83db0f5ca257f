package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/config"
	contentcontroller "github.com/foresthealth/storefront-api/controllers/content"
	orderControllers "github.com/foresthealth/storefront-api/controllers/order"
	productcontroller "github.com/foresthealth/storefront-api/controllers/product"
	"github.com/foresthealth/storefront-api/middleware"
	"github.com/foresthealth/storefront-api/store"
)

// SetupAdminRoutes registers every mutating endpoint. Requires the Bearer
// admin token.
func SetupAdminRoutes(r *gin.Engine, cfg *config.Config, s *store.Store) {
	api := r.Group("/api")
	api.Use(middleware.RequireAdmin(cfg))
	{
		// ─────────── Product Management ───────────
		api.POST("/products", productcontroller.CreateProduct(s))
		api.PUT("/products/:id", productcontroller.UpdateProduct(s))
		api.DELETE("/products/:id", productcontroller.DeleteProduct(s))
		api.GET("/products/export", productcontroller.ExportProductsToExcel(s))

		// ─────────── Category Management ───────────
		api.POST("/categories", productcontroller.CreateCategory(s))
		api.PUT("/categories/:id", productcontroller.UpdateCategory(s))
		api.DELETE("/categories/:id", productcontroller.DeleteCategory(s))

		// ─────────── Site Content ───────────
		api.PUT("/content", contentcontroller.UpdateContent(s))

		// ─────────── Orders ───────────
		api.GET("/orders", orderControllers.GetAllOrdersHandler(s))
	}
}
