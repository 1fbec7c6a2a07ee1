// File: /controllers/transport_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/services"
	"ecotrip-api/utils"
)

type TransportController struct {
	transportService *services.TransportService
	estimatorService *services.EstimatorService
	routeProvider    services.RouteProvider
}

func NewTransportController(db *gorm.DB, estimator *services.EstimatorService, provider services.RouteProvider) *TransportController {
	return &TransportController{
		transportService: services.NewTransportService(db),
		estimatorService: estimator,
		routeProvider:    provider,
	}
}

func (tc *TransportController) GetStatistics(c *gin.Context) {
	userID := c.GetString("user_id")

	statistics, err := tc.transportService.Statistics(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, statistics)
}

func (tc *TransportController) GetLeaderboard(c *gin.Context) {
	metric := services.LeaderboardMetric(c.Query("metric"))
	period := services.LeaderboardPeriod(c.Query("period"))

	leaderboard, err := tc.transportService.Leaderboard(metric, period)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// GetTripEstimate compares all supported modes between two addresses
// before the user commits to logging a trip.
func (tc *TransportController) GetTripEstimate(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.SendError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	alternatives, err := tc.estimatorService.Alternatives(c.Request.Context(), origin, destination)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}

func (tc *TransportController) Autocomplete(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.SendError(c, http.StatusBadRequest, "query is required")
		return
	}

	addresses, err := tc.routeProvider.Autocomplete(c.Request.Context(), query, c.Query("session"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}
