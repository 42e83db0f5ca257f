package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/auth"
	"github.com/foresthealth/storefront-api/config"
	contentcontroller "github.com/foresthealth/storefront-api/controllers/content"
	orderControllers "github.com/foresthealth/storefront-api/controllers/order"
	productcontroller "github.com/foresthealth/storefront-api/controllers/product"
	systemController "github.com/foresthealth/storefront-api/controllers/system"
	"github.com/foresthealth/storefront-api/store"
)

// SetupPublicRoutes registers everything the storefront calls without a
// token: catalog reads, content reads, checkout, login and diagnostics.
func SetupPublicRoutes(r *gin.Engine, cfg *config.Config, s *store.Store) {
	r.GET("/", systemController.Root())
	r.GET("/test", systemController.TestDatabase(s))

	api := r.Group("/api")
	{
		api.GET("/hello", systemController.Hello())
		api.GET("/products", productcontroller.GetProducts(s))
		api.GET("/categories", productcontroller.GetAllCategories(s))
		api.GET("/content", contentcontroller.GetContent(s))
		api.POST("/login", auth.LoginHandler(cfg))
		api.POST("/checkout", orderControllers.CheckoutHandler(s))
	}
}
