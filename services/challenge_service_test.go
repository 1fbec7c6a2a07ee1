// File: /services/challenge_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ecotrip-api/models"
)

func seedChallenge(t *testing.T, db *gorm.DB, title string, challengeType models.ChallengeType, target float64, reward int) models.Challenge {
	t.Helper()

	challenge := models.Challenge{
		ID:           uuid.New().String(),
		Title:        title,
		Type:         challengeType,
		TargetValue:  target,
		RewardPoints: reward,
	}
	require.NoError(t, db.Create(&challenge).Error)
	return challenge
}

func userPoints(t *testing.T, db *gorm.DB, userID string) int {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", userID).Error)
	return user.Points
}

func TestStartAllCreatesStatusRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChallengeService(db)
	seedChallenge(t, db, "Save 10 kg CO2e", models.ChallengeMetric, 10, 100)
	seedChallenge(t, db, "First steps", models.ChallengeAction, 5, 50)
	user := createTestUser(t, db, "kari", 0)

	require.NoError(t, svc.StartAll(db, user.ID))

	statuses, err := svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Equal(t, models.ChallengeNotStarted, status.Status)
		assert.Zero(t, status.CurrentValue)
	}
}

func TestApplyTripMetricChallenge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChallengeService(db)
	challenge := seedChallenge(t, db, "Save 10 kg CO2e", models.ChallengeMetric, 10, 100)
	user := createTestUser(t, db, "kari", 0)
	require.NoError(t, svc.StartAll(db, user.ID))

	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{SavedEmissionsCO2eKg: 6}))

	statuses, err := svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, models.ChallengeInProgress, statuses[0].Status)
	assert.InDelta(t, 6, statuses[0].CurrentValue, 1e-9)
	assert.Equal(t, 0, userPoints(t, db, user.ID))

	// Crossing the target clamps the value and pays the reward.
	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{SavedEmissionsCO2eKg: 6}))

	statuses, err = svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ChallengeCompleted, statuses[0].Status)
	assert.InDelta(t, challenge.TargetValue, statuses[0].CurrentValue, 1e-9)
	assert.NotNil(t, statuses[0].CompletedAt)
	assert.Equal(t, 100, userPoints(t, db, user.ID))

	// Completed challenges never pay twice.
	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{SavedEmissionsCO2eKg: 6}))
	assert.Equal(t, 100, userPoints(t, db, user.ID))

	statuses, err = svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, challenge.TargetValue, statuses[0].CurrentValue, 1e-9)
}

func TestApplyTripActionChallenge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChallengeService(db)
	seedChallenge(t, db, "First steps", models.ChallengeAction, 2, 50)
	user := createTestUser(t, db, "kari", 0)
	require.NoError(t, svc.StartAll(db, user.ID))

	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{}))
	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{}))

	statuses, err := svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, models.ChallengeCompleted, statuses[0].Status)
	assert.InDelta(t, 2, statuses[0].CurrentValue, 1e-9)
	assert.Equal(t, 50, userPoints(t, db, user.ID))
}

func TestApplyTripCarFreeChallengeIgnoresDriving(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChallengeService(db)
	challenge := models.Challenge{
		ID:           uuid.New().String(),
		Title:        "Car-free week",
		Type:         models.ChallengeAction,
		TargetValue:  10,
		RewardPoints: 150,
		CarFreeOnly:  true,
	}
	require.NoError(t, db.Create(&challenge).Error)
	user := createTestUser(t, db, "kari", 0)
	require.NoError(t, svc.StartAll(db, user.ID))

	// Driving neither starts nor advances a car-free challenge.
	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{TravelMode: models.ModeDrive}))

	statuses, err := svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, models.ChallengeNotStarted, statuses[0].Status)
	assert.Zero(t, statuses[0].CurrentValue)

	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{TravelMode: models.ModeBike}))

	statuses, err = svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ChallengeInProgress, statuses[0].Status)
	assert.InDelta(t, 1, statuses[0].CurrentValue, 1e-9)
}

func TestApplyTripAdvancesAllOpenChallenges(t *testing.T) {
	db := setupTestDB(t)
	svc := NewChallengeService(db)
	seedChallenge(t, db, "Save 10 kg CO2e", models.ChallengeMetric, 10, 100)
	seedChallenge(t, db, "First steps", models.ChallengeAction, 5, 50)
	user := createTestUser(t, db, "kari", 0)
	require.NoError(t, svc.StartAll(db, user.ID))

	require.NoError(t, svc.ApplyTrip(user.ID, &models.Trip{SavedEmissionsCO2eKg: 3}))

	statuses, err := svc.StatusesForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, status := range statuses {
		assert.Equal(t, models.ChallengeInProgress, status.Status)
		switch status.Challenge.Type {
		case models.ChallengeMetric:
			assert.InDelta(t, 3, status.CurrentValue, 1e-9)
		case models.ChallengeAction:
			assert.InDelta(t, 1, status.CurrentValue, 1e-9)
		}
	}
}
