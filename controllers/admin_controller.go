// File: /controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/services"
)

type AdminController struct {
	transportService *services.TransportService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{transportService: services.NewTransportService(db)}
}

// GetStatistics returns system-wide totals for the admin view.
func (ac *AdminController) GetStatistics(c *gin.Context) {
	statistics, err := ac.transportService.AdminStatistics()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, statistics)
}
