// File: /controllers/challenge_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrip-api/services"
)

type ChallengeController struct {
	challengeService *services.ChallengeService
}

func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{challengeService: services.NewChallengeService(db)}
}

func (cc *ChallengeController) GetChallenges(c *gin.Context) {
	challenges, err := cc.challengeService.ListChallenges()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenges)
}

func (cc *ChallengeController) GetStatuses(c *gin.Context) {
	userID := c.GetString("user_id")

	statuses, err := cc.challengeService.StatusesForUser(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}
