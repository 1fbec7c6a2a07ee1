// File: /services/challenge_service.go
package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrip-api/models"
)

// ChallengeService tracks per-user challenge progress and awards points on
// completion.
type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) ListChallenges() ([]models.Challenge, error) {
	challenges := []models.Challenge{}
	err := s.db.Order("created_at ASC").Find(&challenges).Error
	return challenges, err
}

func (s *ChallengeService) StatusesForUser(userID string) ([]models.ChallengeStatus, error) {
	statuses := []models.ChallengeStatus{}
	err := s.db.Preload("Challenge").Where("user_id = ?", userID).Find(&statuses).Error
	return statuses, err
}

// StartAll creates a NOT_STARTED status for every challenge in the
// catalog. Called once at registration.
func (s *ChallengeService) StartAll(tx *gorm.DB, userID string) error {
	var challenges []models.Challenge
	if err := tx.Find(&challenges).Error; err != nil {
		return err
	}

	for _, challenge := range challenges {
		status := models.ChallengeStatus{
			ID:          uuid.New().String(),
			UserID:      userID,
			ChallengeID: challenge.ID,
			Status:      models.ChallengeNotStarted,
			StartedAt:   time.Now(),
		}
		if err := tx.Create(&status).Error; err != nil {
			return err
		}
	}
	return nil
}

// ApplyTrip advances every open challenge for the trip's owner: metric
// challenges accumulate the trip's emission savings, action challenges
// count the trip itself. Reaching the target clamps the value, marks the
// challenge completed, and credits the reward points, all in one
// transaction per trip.
func (s *ChallengeService) ApplyTrip(userID string, trip *models.Trip) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var statuses []models.ChallengeStatus
		if err := tx.Preload("Challenge").Where("user_id = ?", userID).Find(&statuses).Error; err != nil {
			return err
		}

		for i := range statuses {
			status := &statuses[i]
			if status.Status == models.ChallengeCompleted {
				continue
			}
			if status.Challenge.CarFreeOnly && trip.TravelMode == models.ModeDrive {
				continue
			}

			if status.Status == models.ChallengeNotStarted {
				status.Status = models.ChallengeInProgress
			}

			switch status.Challenge.Type {
			case models.ChallengeMetric:
				status.CurrentValue += trip.SavedEmissionsCO2eKg
			case models.ChallengeAction:
				status.CurrentValue++
			}

			if status.CurrentValue >= status.Challenge.TargetValue {
				now := time.Now()
				status.CurrentValue = status.Challenge.TargetValue
				status.Status = models.ChallengeCompleted
				status.CompletedAt = &now

				if err := tx.Model(&models.User{}).
					Where("id = ?", userID).
					UpdateColumn("points", gorm.Expr("points + ?", status.Challenge.RewardPoints)).Error; err != nil {
					return err
				}
			}

			if err := tx.Model(&models.ChallengeStatus{}).
				Where("id = ?", status.ID).
				Updates(map[string]interface{}{
					"status":        status.Status,
					"current_value": status.CurrentValue,
					"completed_at":  status.CompletedAt,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
