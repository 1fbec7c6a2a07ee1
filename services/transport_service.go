// File: /services/transport_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrip-api/models"
	"ecotrip-api/repositories"
)

// Statistics is a derived snapshot over a trip set. It is recomputed per
// request and never persisted. Field names follow the JSON contract the
// frontend consumes.
type Statistics struct {
	TotalTrips                  int     `json:"totalTrips"`
	TotalDistanceKm             float64 `json:"totalDistanceKm"`
	TotalDurationSeconds        float64 `json:"totalDurationSeconds"`
	TotalEmissionsCO2eKg        float64 `json:"totalEmissionsCO2eKg"`
	TotalEmissionsSavingsCO2eKg float64 `json:"totalEmissionsSavingsCO2eKg"`
	TotalCostNOK                float64 `json:"totalCostNOK"`
	TotalSavingsNOK             float64 `json:"totalSavingsNOK"`
}

type AdminStatistics struct {
	TotalUsers           int64   `json:"totalUsers"`
	TotalTrips           int64   `json:"totalTrips"`
	TotalTripDistance    float64 `json:"totalTripDistance"`
	TotalEmissionsCO2eKg float64 `json:"totalEmissionsCO2eKg"`
}

type LeaderboardMetric string

const (
	MetricTotalEmissions      LeaderboardMetric = "total_emissions"
	MetricTotalSavedEmissions LeaderboardMetric = "total_saved_emissions"
	MetricTotalDistance       LeaderboardMetric = "total_distance"
	MetricTotalDuration       LeaderboardMetric = "total_duration"
	MetricAverageCO2ePerKm    LeaderboardMetric = "avg_co2e_per_km"
)

type LeaderboardPeriod string

const (
	PeriodLifetime  LeaderboardPeriod = "lifetime"
	PeriodPastYear  LeaderboardPeriod = "past_year"
	PeriodPastMonth LeaderboardPeriod = "past_month"
	PeriodPastWeek  LeaderboardPeriod = "past_week"
)

type LeaderboardRow struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Value     float64 `json:"value"`
}

type Leaderboard struct {
	Metric LeaderboardMetric `json:"metric"`
	Period LeaderboardPeriod `json:"period"`
	Rows   []LeaderboardRow  `json:"rows"`
}

// TransportService owns the vehicle registry, the trip ledger, and the
// statistics aggregation on top of it.
type TransportService struct {
	db    *gorm.DB
	trips *repositories.TripRepository
}

func NewTransportService(db *gorm.DB) *TransportService {
	return &TransportService{
		db:    db,
		trips: repositories.NewTripRepository(db),
	}
}

// CreateVehicle registers a vehicle. The user's first vehicle becomes the
// default; later ones do not.
func (s *TransportService) CreateVehicle(userID, make, model string, year int, vehicleType models.VehicleType, emissionsCO2ePerKm float64) (*models.Vehicle, error) {
	if _, err := models.ParseVehicleType(string(vehicleType)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if emissionsCO2ePerKm < 0 {
		return nil, fmt.Errorf("%w: emissions factor cannot be negative", ErrInvalidVehicle)
	}

	vehicle := &models.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Make:               make,
		Model:              model,
		Type:               vehicleType,
		Year:               year,
		EmissionsCO2ePerKm: emissionsCO2ePerKm,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Vehicle{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		vehicle.IsDefault = count == 0
		return tx.Create(vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehicles returns the user's vehicles in creation order. An empty
// slice, not an error, when the user owns none.
func (s *TransportService) ListVehicles(userID string) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&vehicles).Error
	return vehicles, err
}

// DefaultVehicle returns the user's default vehicle, or nil when the user
// has none.
func (s *TransportService) DefaultVehicle(userID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.Where("user_id = ? AND is_default = ?", userID, true).First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetVehicle fetches a vehicle owned by the user.
func (s *TransportService) GetVehicle(userID, vehicleID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.Where("id = ? AND user_id = ?", vehicleID, userID).First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// SetDefaultVehicle makes the target the user's only default. The
// clear-then-set runs in a single transaction so there is never a window
// with zero or two defaults.
func (s *TransportService) SetDefaultVehicle(userID, vehicleID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.Where("id = ? AND user_id = ?", vehicleID, userID).First(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
			}
			return err
		}

		if err := tx.Model(&models.Vehicle{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&vehicle).Update("is_default", true).Error
	})
}

// DeleteVehicle removes a vehicle owned by the user. When the default is
// deleted and other vehicles remain, the most-recently-created survivor is
// promoted to default within the same transaction.
func (s *TransportService) DeleteVehicle(userID, vehicleID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.Where("id = ? AND user_id = ?", vehicleID, userID).First(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleID)
			}
			return err
		}

		if err := tx.Delete(&vehicle).Error; err != nil {
			return err
		}

		if !vehicle.IsDefault {
			return nil
		}

		var successor models.Vehicle
		err := tx.Where("user_id = ?", userID).Order("created_at DESC").First(&successor).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&successor).Update("is_default", true).Error
	})
}

// RecordTrip assigns identity and persists the trip.
func (s *TransportService) RecordTrip(trip *models.Trip) error {
	trip.ID = uuid.New().String()
	trip.CreatedAt = time.Now()
	return s.trips.Create(trip)
}

func (s *TransportService) ListTrips(userID string) ([]models.Trip, error) {
	return s.trips.ListByUser(userID)
}

func (s *TransportService) ListAllTrips() ([]models.Trip, error) {
	return s.trips.ListAll()
}

// Summarize folds a trip set into a statistics snapshot. The reduction is
// commutative, so trip order never affects the result; an empty input
// yields the zero snapshot.
func Summarize(trips []models.Trip) Statistics {
	var stats Statistics
	for _, trip := range trips {
		stats.TotalTrips++
		stats.TotalDistanceKm += trip.DistanceKm
		stats.TotalDurationSeconds += trip.DurationSeconds
		stats.TotalEmissionsCO2eKg += trip.EmissionsCO2eKg
		stats.TotalEmissionsSavingsCO2eKg += trip.SavedEmissionsCO2eKg
		stats.TotalCostNOK += trip.CostNOK
		stats.TotalSavingsNOK += trip.SavedCostNOK
	}
	return stats
}

func (s *TransportService) Statistics(userID string) (Statistics, error) {
	trips, err := s.trips.ListByUser(userID)
	if err != nil {
		return Statistics{}, err
	}
	return Summarize(trips), nil
}

func (s *TransportService) AdminStatistics() (AdminStatistics, error) {
	trips, err := s.trips.ListAll()
	if err != nil {
		return AdminStatistics{}, err
	}

	var userCount int64
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return AdminStatistics{}, err
	}

	summary := Summarize(trips)
	return AdminStatistics{
		TotalUsers:           userCount,
		TotalTrips:           int64(summary.TotalTrips),
		TotalTripDistance:    summary.TotalDistanceKm,
		TotalEmissionsCO2eKg: summary.TotalEmissionsCO2eKg,
	}, nil
}

// Leaderboard ranks users by the requested metric over the requested
// period. Unknown values fall back to total emissions over the lifetime
// window.
func (s *TransportService) Leaderboard(metric LeaderboardMetric, period LeaderboardPeriod) (*Leaderboard, error) {
	since := time.Now()
	switch period {
	case PeriodPastYear:
		since = since.AddDate(-1, 0, 0)
	case PeriodPastMonth:
		since = since.AddDate(0, -1, 0)
	case PeriodPastWeek:
		since = since.AddDate(0, 0, -7)
	default:
		period = PeriodLifetime
		since = since.AddDate(-100, 0, 0)
	}

	var selectExpr, order string
	switch metric {
	case MetricTotalSavedEmissions:
		selectExpr = "SUM(trips.saved_emissions_co2e_kg) AS value"
		order = "value DESC"
	case MetricTotalDistance:
		selectExpr = "SUM(trips.distance_km) AS value"
		order = "value DESC"
	case MetricTotalDuration:
		selectExpr = "SUM(trips.duration_seconds) AS value"
		order = "value DESC"
	case MetricAverageCO2ePerKm:
		// Distance-weighted, and zero-distance trips are filtered below so
		// the division can never hit zero.
		selectExpr = "SUM(trips.emissions_co2e_kg) / SUM(trips.distance_km) AS value"
		order = "value ASC"
	default:
		metric = MetricTotalEmissions
		selectExpr = "SUM(trips.emissions_co2e_kg) AS value"
		order = "value ASC"
	}

	query := s.db.Table("trips").
		Select("users.username, users.first_name, users.last_name, " + selectExpr).
		Joins("JOIN users ON users.id = trips.user_id").
		Where("trips.created_at >= ?", since)
	if metric == MetricAverageCO2ePerKm {
		query = query.Where("trips.distance_km > 0")
	}

	var rows []LeaderboardRow
	err := query.
		Group("users.id, users.username, users.first_name, users.last_name").
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []LeaderboardRow{}
	}

	return &Leaderboard{Metric: metric, Period: period, Rows: rows}, nil
}
