// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"ecotrip-api/config"
	"ecotrip-api/database"
	"ecotrip-api/middleware"
	"ecotrip-api/routes"
	"ecotrip-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed catalog data (cosmetics and challenges)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Email service
	emailService := services.NewEmailService(cfg)

	// Routing provider
	provider, err := services.NewGoogleRouteProvider(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Fatal("Failed to create routing provider:", err)
	}

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, provider)

	// Start server
	log.Printf("Starting EcoTrip API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
