// File: /models/trip.go
package models

import (
	"fmt"
	"time"
)

// TravelMode is the transport mode a trip was taken with.
type TravelMode string

const (
	ModeWalk    TravelMode = "walk"
	ModeBike    TravelMode = "bike"
	ModeTransit TravelMode = "transit"
	ModeDrive   TravelMode = "drive"
)

func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case ModeWalk, ModeBike, ModeTransit, ModeDrive:
		return TravelMode(s), nil
	default:
		return "", fmt.Errorf("invalid travel mode: %q", s)
	}
}

// Trip is an append-only record of a completed trip with its computed
// metrics. Trips are never updated or deleted once recorded.
type Trip struct {
	ID          string     `json:"id" gorm:"primaryKey;size:191"`
	UserID      string     `json:"user_id" gorm:"not null;size:191;index"`
	Origin      string     `json:"origin" gorm:"not null;size:500"`
	Destination string     `json:"destination" gorm:"not null;size:500"`
	TravelMode  TravelMode `json:"travelMode" gorm:"not null;size:16"`
	VehicleID   *string    `json:"vehicle_id" gorm:"size:191"`

	DistanceKm           float64 `json:"totalDistanceKm" gorm:"not null"`
	DurationSeconds      float64 `json:"totalDurationSeconds" gorm:"not null"`
	EmissionsCO2eKg      float64 `json:"totalEmissionsCO2eKg" gorm:"column:emissions_co2e_kg;not null"`
	SavedEmissionsCO2eKg float64 `json:"savedEmissionsCO2eKg" gorm:"column:saved_emissions_co2e_kg;not null"`
	CostNOK              float64 `json:"costNOK" gorm:"column:cost_nok;not null"`
	SavedCostNOK         float64 `json:"savedCostNOK" gorm:"column:saved_cost_nok;not null"`

	CreatedAt time.Time `json:"created_at"`

	User    User     `json:"-" gorm:"foreignKey:UserID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
