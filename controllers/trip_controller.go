// File: /controllers/trip_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/models"
	"ecotrip-api/services"
)

type TripController struct {
	transportService *services.TransportService
	estimatorService *services.EstimatorService
	challengeService *services.ChallengeService
}

func NewTripController(db *gorm.DB, estimator *services.EstimatorService) *TripController {
	return &TripController{
		transportService: services.NewTransportService(db),
		estimatorService: estimator,
		challengeService: services.NewChallengeService(db),
	}
}

type CreateTripRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Mode        string `json:"mode" binding:"required"`
	VehicleID   string `json:"vehicleId"`
}

// CreateTrip estimates the requested trip, persists it, and advances the
// user's challenges with the computed savings.
func (tc *TripController) CreateTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := models.ParseTravelMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The trip vehicle must be owned by the caller. Ownership failures
	// surface as an invalid vehicle, not a lookup miss.
	var vehicle *models.Vehicle
	if req.VehicleID != "" {
		vehicle, err = tc.transportService.GetVehicle(userID, req.VehicleID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle not found or access denied"})
			return
		}
	}

	// Savings baseline: the user's default vehicle, or the system average
	// when there is none.
	baseline, err := tc.transportService.DefaultVehicle(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	estimate, err := tc.estimatorService.Estimate(c.Request.Context(), req.Origin, req.Destination, mode, vehicle, baseline)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	trip := &models.Trip{
		UserID:               userID,
		Origin:               req.Origin,
		Destination:          req.Destination,
		TravelMode:           mode,
		DistanceKm:           estimate.Mode.DistanceKm,
		DurationSeconds:      estimate.Mode.DurationSeconds,
		EmissionsCO2eKg:      estimate.Mode.EmissionsCO2eKg,
		SavedEmissionsCO2eKg: estimate.SavedEmissionsCO2eKg,
		CostNOK:              estimate.Mode.CostNOK,
		SavedCostNOK:         estimate.SavedCostNOK,
	}
	if vehicle != nil {
		trip.VehicleID = &vehicle.ID
	}

	if err := tc.transportService.RecordTrip(trip); err != nil {
		handleServiceError(c, err)
		return
	}

	// The trip is already recorded; failing challenge bookkeeping must not
	// turn the response into an error.
	if err := tc.challengeService.ApplyTrip(userID, trip); err != nil {
		log.Printf("Failed to apply trip to challenges for user %s: %v", userID, err)
	}

	c.JSON(http.StatusCreated, trip)
}

func (tc *TripController) GetTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	trips, err := tc.transportService.ListTrips(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}
