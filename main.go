package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/foresthealth/storefront-api/config"
	contentcontroller "github.com/foresthealth/storefront-api/controllers/content"
	productcontroller "github.com/foresthealth/storefront-api/controllers/product"
	"github.com/foresthealth/storefront-api/routes"
	"github.com/foresthealth/storefront-api/store"
)

func main() {
	log.Println("✅ Starting Forest Health Goods API...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Connect the document store. The API runs without it: reads fall back
	// to built-in samples, writes report the store as unavailable.
	s := connectStore(cfg)

	// Seed sample data once. Best effort: a failed seed is logged, never
	// fatal.
	seed(s)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, cfg, s)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// connectStore dials Mongo and returns nil on failure so the API can keep
// serving its fallback reads.
func connectStore(cfg *config.Config) *store.Store {
	s, err := store.Connect(context.Background(), cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Printf("⚠️ Document store unreachable, running with fallbacks: %v", err)
		return nil
	}
	log.Printf("✅ Connected to document store %q", cfg.DatabaseName)
	return s
}

func seed(s *store.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := productcontroller.SeedProducts(ctx, s); err != nil {
		log.Printf("⚠️ Product seeding failed: %v", err)
	}
	if err := contentcontroller.SeedContent(ctx, s); err != nil {
		log.Printf("⚠️ Content seeding failed: %v", err)
	}
}
