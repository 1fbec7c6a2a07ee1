// File: /controllers/cosmetics_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/services"
)

type CosmeticsController struct {
	cosmeticsService *services.CosmeticsService
}

func NewCosmeticsController(db *gorm.DB) *CosmeticsController {
	return &CosmeticsController{cosmeticsService: services.NewCosmeticsService(db)}
}

type PurchaseRequest struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CosmeticsController) GetShop(c *gin.Context) {
	cosmetics, err := cc.cosmeticsService.Shop()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cosmetics)
}

func (cc *CosmeticsController) GetInventory(c *gin.Context) {
	userID := c.GetString("user_id")

	cosmetics, err := cc.cosmeticsService.Inventory(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cosmetics)
}

func (cc *CosmeticsController) PurchaseCosmetic(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cosmetic, err := cc.cosmeticsService.Purchase(userID, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cosmetic)
}

func (cc *CosmeticsController) EquipCosmetic(c *gin.Context) {
	userID := c.GetString("user_id")
	cosmeticID := c.Param("id")

	cosmetic, err := cc.cosmeticsService.Equip(userID, cosmeticID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cosmetic)
}
