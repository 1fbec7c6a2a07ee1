// File: /controllers/vehicle_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/models"
	"ecotrip-api/services"
	"ecotrip-api/utils"
)

type VehicleController struct {
	transportService *services.TransportService
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{transportService: services.NewTransportService(db)}
}

type CreateVehicleRequest struct {
	Make               string  `json:"make" binding:"required"`
	Model              string  `json:"model" binding:"required"`
	Type               string  `json:"type" binding:"required"`
	Year               int     `json:"year" binding:"required"`
	EmissionsCO2ePerKm float64 `json:"emissionsCO2ePerKm"`
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	userID := c.GetString("user_id")

	vehicles, err := vc.transportService.ListVehicles(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidEmissionFactor(req.EmissionsCO2ePerKm) {
		utils.SendValidationError(c, "Emission factor must be between 0 and 2 kg CO2e per km")
		return
	}

	vehicle, err := vc.transportService.CreateVehicle(
		userID, req.Make, req.Model, req.Year,
		models.VehicleType(req.Type), req.EmissionsCO2ePerKm,
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) SetDefaultVehicle(c *gin.Context) {
	userID := c.GetString("user_id")
	vehicleID := c.Param("id")

	if err := vc.transportService.SetDefaultVehicle(userID, vehicleID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Default vehicle updated", nil)
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	userID := c.GetString("user_id")
	vehicleID := c.Param("id")

	if err := vc.transportService.DeleteVehicle(userID, vehicleID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Vehicle deleted successfully", nil)
}
