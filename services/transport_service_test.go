// File: /services/transport_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecotrip-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Trip{},
		&models.Cosmetic{},
		&models.Challenge{},
		&models.ChallengeStatus{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, points int) models.User {
	t.Helper()

	user := models.User{
		ID:        uuid.New().String(),
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed",
		Points:    points,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestCreateVehicleFirstBecomesDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "kari", 0)

	first, err := svc.CreateVehicle(user.ID, "Toyota", "Corolla", 2018, models.VehicleCar, 0.12)
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.CreateVehicle(user.ID, "Tesla", "Model 3", 2022, models.VehicleElectricCar, 0.05)
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestCreateVehicleRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "ola", 0)

	_, err := svc.CreateVehicle(user.ID, "Ford", "Focus", 2015, "HOVERCRAFT", 0.1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateVehicle(user.ID, "Ford", "Focus", 2015, models.VehicleCar, -0.1)
	assert.ErrorIs(t, err, ErrInvalidVehicle)
}

func TestSetDefaultVehicleIsExclusive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "kari", 0)

	v1, err := svc.CreateVehicle(user.ID, "Toyota", "Corolla", 2018, models.VehicleCar, 0.12)
	require.NoError(t, err)
	v2, err := svc.CreateVehicle(user.ID, "Tesla", "Model 3", 2022, models.VehicleElectricCar, 0.05)
	require.NoError(t, err)

	require.NoError(t, svc.SetDefaultVehicle(user.ID, v2.ID))

	var defaults []models.Vehicle
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", user.ID, true).Find(&defaults).Error)
	require.Len(t, defaults, 1)
	assert.Equal(t, v2.ID, defaults[0].ID)

	updated, err := svc.GetVehicle(user.ID, v1.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
}

func TestSetDefaultVehicleNotOwned(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	owner := createTestUser(t, db, "owner", 0)
	other := createTestUser(t, db, "other", 0)

	vehicle, err := svc.CreateVehicle(owner.ID, "Toyota", "Corolla", 2018, models.VehicleCar, 0.12)
	require.NoError(t, err)

	err = svc.SetDefaultVehicle(other.ID, vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDefaultPromotesMostRecent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "kari", 0)

	// Explicit timestamps so creation order is unambiguous.
	now := time.Now()
	vehicles := []models.Vehicle{
		{ID: uuid.New().String(), UserID: user.ID, Make: "Toyota", Model: "Corolla", Type: models.VehicleCar, Year: 2018, EmissionsCO2ePerKm: 0.12, IsDefault: true, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: uuid.New().String(), UserID: user.ID, Make: "VW", Model: "Golf", Type: models.VehicleCar, Year: 2020, EmissionsCO2ePerKm: 0.11, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New().String(), UserID: user.ID, Make: "Tesla", Model: "Model 3", Type: models.VehicleElectricCar, Year: 2022, EmissionsCO2ePerKm: 0.05, CreatedAt: now.Add(-time.Hour)},
	}
	for i := range vehicles {
		require.NoError(t, db.Create(&vehicles[i]).Error)
	}

	require.NoError(t, svc.DeleteVehicle(user.ID, vehicles[0].ID))

	promoted, err := svc.DefaultVehicle(user.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, vehicles[2].ID, promoted.ID)
}

func TestDeleteLastVehicleLeavesNoDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "kari", 0)

	vehicle, err := svc.CreateVehicle(user.ID, "Toyota", "Corolla", 2018, models.VehicleCar, 0.12)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteVehicle(user.ID, vehicle.ID))

	remaining, err := svc.DefaultVehicle(user.ID)
	require.NoError(t, err)
	assert.Nil(t, remaining)
}

func TestDeleteVehicleNotOwned(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	owner := createTestUser(t, db, "owner", 0)
	other := createTestUser(t, db, "other", 0)

	vehicle, err := svc.CreateVehicle(owner.ID, "Toyota", "Corolla", 2018, models.VehicleCar, 0.12)
	require.NoError(t, err)

	err = svc.DeleteVehicle(other.ID, vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetVehicle(owner.ID, vehicle.ID)
	assert.NoError(t, err)
}

func TestSummarizeEmptyIsZero(t *testing.T) {
	assert.Equal(t, Statistics{}, Summarize(nil))
	assert.Equal(t, Statistics{}, Summarize([]models.Trip{}))
}

func TestSummarizeOrderIndependent(t *testing.T) {
	trips := []models.Trip{
		{DistanceKm: 5, DurationSeconds: 600, EmissionsCO2eKg: 0.59, SavedEmissionsCO2eKg: 0, CostNOK: 7.7, SavedCostNOK: 0},
		{DistanceKm: 3, DurationSeconds: 2400, EmissionsCO2eKg: 0, SavedEmissionsCO2eKg: 0.35, CostNOK: 0, SavedCostNOK: 4.6},
		{DistanceKm: 12, DurationSeconds: 1500, EmissionsCO2eKg: 1.07, SavedEmissionsCO2eKg: 0.4, CostNOK: 18, SavedCostNOK: 2},
	}
	reversed := []models.Trip{trips[2], trips[1], trips[0]}

	forward := Summarize(trips)
	backward := Summarize(reversed)

	assert.Equal(t, 3, forward.TotalTrips)
	assert.InDelta(t, 20, forward.TotalDistanceKm, 1e-9)
	assert.InDelta(t, forward.TotalEmissionsCO2eKg, backward.TotalEmissionsCO2eKg, 1e-9)
	assert.InDelta(t, forward.TotalSavingsNOK, backward.TotalSavingsNOK, 1e-9)
	assert.Equal(t, forward, backward)
}

func TestListTripsReverseChronological(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "kari", 0)

	first := &models.Trip{UserID: user.ID, Origin: "A", Destination: "B", TravelMode: models.ModeWalk}
	second := &models.Trip{UserID: user.ID, Origin: "B", Destination: "C", TravelMode: models.ModeBike}
	require.NoError(t, svc.RecordTrip(first))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, svc.RecordTrip(second))

	trips, err := svc.ListTrips(user.ID)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
	assert.Equal(t, first.ID, trips[1].ID)
}

func TestStatisticsSumsOwnTripsOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	kari := createTestUser(t, db, "kari", 0)
	ola := createTestUser(t, db, "ola", 0)

	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: kari.ID, Origin: "A", Destination: "B", TravelMode: models.ModeWalk, DistanceKm: 5, SavedEmissionsCO2eKg: 0.59, SavedCostNOK: 7.7}))
	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: ola.ID, Origin: "A", Destination: "B", TravelMode: models.ModeDrive, DistanceKm: 5, EmissionsCO2eKg: 0.59, CostNOK: 7.7}))

	stats, err := svc.Statistics(kari.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalTrips)
	assert.InDelta(t, 5, stats.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 0.59, stats.TotalEmissionsSavingsCO2eKg, 1e-9)
	assert.InDelta(t, 0, stats.TotalEmissionsCO2eKg, 1e-9)
}

func TestAdminStatistics(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	kari := createTestUser(t, db, "kari", 0)
	ola := createTestUser(t, db, "ola", 0)

	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: kari.ID, Origin: "A", Destination: "B", TravelMode: models.ModeWalk, DistanceKm: 5}))
	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: ola.ID, Origin: "A", Destination: "B", TravelMode: models.ModeDrive, DistanceKm: 10, EmissionsCO2eKg: 1.18}))

	stats, err := svc.AdminStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalTrips)
	assert.InDelta(t, 15, stats.TotalTripDistance, 1e-9)
	assert.InDelta(t, 1.18, stats.TotalEmissionsCO2eKg, 1e-9)
}

func TestLeaderboardRanksLowestEmissionsFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	kari := createTestUser(t, db, "kari", 0)
	ola := createTestUser(t, db, "ola", 0)

	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: kari.ID, Origin: "A", Destination: "B", TravelMode: models.ModeWalk, DistanceKm: 5, EmissionsCO2eKg: 0}))
	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: ola.ID, Origin: "A", Destination: "B", TravelMode: models.ModeDrive, DistanceKm: 10, EmissionsCO2eKg: 1.18}))

	board, err := svc.Leaderboard(MetricTotalEmissions, PeriodLifetime)
	require.NoError(t, err)
	require.Len(t, board.Rows, 2)
	assert.Equal(t, "kari", board.Rows[0].Username)
	assert.Equal(t, "ola", board.Rows[1].Username)
}

func TestLeaderboardAverageSkipsZeroDistanceTrips(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	kari := createTestUser(t, db, "kari", 0)
	ola := createTestUser(t, db, "ola", 0)

	// kari has a real trip plus a zero-distance one; ola only the latter.
	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: kari.ID, Origin: "A", Destination: "B", TravelMode: models.ModeDrive, DistanceKm: 10, EmissionsCO2eKg: 1.2}))
	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: kari.ID, Origin: "A", Destination: "A", TravelMode: models.ModeDrive, DistanceKm: 0, EmissionsCO2eKg: 0}))
	require.NoError(t, svc.RecordTrip(&models.Trip{UserID: ola.ID, Origin: "A", Destination: "A", TravelMode: models.ModeWalk, DistanceKm: 0, EmissionsCO2eKg: 0}))

	board, err := svc.Leaderboard(MetricAverageCO2ePerKm, PeriodLifetime)
	require.NoError(t, err)
	require.Len(t, board.Rows, 1)
	assert.Equal(t, "kari", board.Rows[0].Username)
	assert.InDelta(t, 0.12, board.Rows[0].Value, 1e-9)
}

func TestLeaderboardUnknownInputsFallBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)

	board, err := svc.Leaderboard("nonsense", "also nonsense")
	require.NoError(t, err)
	assert.Equal(t, MetricTotalEmissions, board.Metric)
	assert.Equal(t, PeriodLifetime, board.Period)
	assert.Empty(t, board.Rows)
}

func TestLeaderboardPeriodExcludesOldTrips(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	kari := createTestUser(t, db, "kari", 0)

	old := models.Trip{ID: uuid.New().String(), UserID: kari.ID, Origin: "A", Destination: "B", TravelMode: models.ModeDrive, DistanceKm: 10, EmissionsCO2eKg: 1.18, CreatedAt: time.Now().AddDate(0, -2, 0)}
	require.NoError(t, db.Create(&old).Error)

	board, err := svc.Leaderboard(MetricTotalEmissions, PeriodPastWeek)
	require.NoError(t, err)
	assert.Empty(t, board.Rows)

	board, err = svc.Leaderboard(MetricTotalEmissions, PeriodLifetime)
	require.NoError(t, err)
	assert.Len(t, board.Rows, 1)
}

func TestGetVehicleMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransportService(db)
	user := createTestUser(t, db, "kari", 0)

	_, err := svc.GetVehicle(user.ID, uuid.New().String())
	assert.True(t, errors.Is(err, ErrNotFound))
}
