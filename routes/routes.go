// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/config"
	"ecotrip-api/controllers"
	"ecotrip-api/middleware"
	"ecotrip-api/services"
)

// SetupCORS returns the CORS middleware used by the API. The frontend dev
// server and the deployed frontend are both browser clients.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, provider services.RouteProvider) {
	estimator := services.NewEstimatorService(provider, services.CostFactors{
		FuelPriceNOKPerLiter:     cfg.FuelPriceNOKPerLiter,
		FuelConsumptionLPer100Km: cfg.FuelConsumptionLPer100Km,
		TransitCostPerKmNOK:      cfg.TransitCostPerKmNOK,
	})

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	vehicleController := controllers.NewVehicleController(db)
	tripController := controllers.NewTripController(db, estimator)
	transportController := controllers.NewTransportController(db, estimator, provider)
	cosmeticsController := controllers.NewCosmeticsController(db)
	challengeController := controllers.NewChallengeController(db)
	adminController := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(20, 5))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.DELETE("/profile", userController.DeleteProfile)
		}

		// Transport routes
		transport := protected.Group("/transport")
		{
			transport.GET("/vehicles", vehicleController.GetVehicles)
			transport.POST("/vehicles", vehicleController.CreateVehicle)
			transport.PUT("/vehicles/:id/default", vehicleController.SetDefaultVehicle)
			transport.DELETE("/vehicles/:id", vehicleController.DeleteVehicle)
			transport.GET("/statistics", transportController.GetStatistics)
			transport.GET("/leaderboard", transportController.GetLeaderboard)
			transport.GET("/tripestimate", transportController.GetTripEstimate)
			transport.GET("/autocomplete", transportController.Autocomplete)
		}

		// Trip routes
		trips := protected.Group("/trips")
		{
			trips.GET("/", tripController.GetTrips)
			trips.POST("/", tripController.CreateTrip)
		}

		// Cosmetics routes
		cosmetics := protected.Group("/cosmetics")
		{
			cosmetics.GET("/shop", cosmeticsController.GetShop)
			cosmetics.GET("/inventory", cosmeticsController.GetInventory)
			cosmetics.POST("/purchase", cosmeticsController.PurchaseCosmetic)
			cosmetics.PUT("/equip/:id", cosmeticsController.EquipCosmetic)
		}

		// Challenge routes
		challenges := protected.Group("/challenges")
		{
			challenges.GET("/", challengeController.GetChallenges)
			challenges.GET("/status", challengeController.GetStatuses)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware(db))
		{
			admin.GET("/statistics", adminController.GetStatistics)
		}
	}
}
