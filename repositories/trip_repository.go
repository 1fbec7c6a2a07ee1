// File: /repositories/trip_repository.go
package repositories

import (
	"gorm.io/gorm"

	"ecotrip-api/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create persists one trip row. Trips are append-only: there is no update
// or delete path.
func (r *TripRepository) Create(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

// ListByUser returns a user's trips, newest first.
func (r *TripRepository) ListByUser(userID string) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	return trips, err
}

// ListAll returns every trip in the system, newest first.
func (r *TripRepository) ListAll() ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.Order("created_at DESC").Find(&trips).Error
	return trips, err
}
