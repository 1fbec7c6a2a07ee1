// File: /models/vehicle.go
package models

import (
	"fmt"
	"time"
)

// VehicleType classifies a vehicle for routing and emissions purposes.
type VehicleType string

const (
	VehicleBicycle         VehicleType = "BICYCLE"
	VehicleElectricBike    VehicleType = "ELECTRIC_BIKE"
	VehicleElectricScooter VehicleType = "ELECTRIC_SCOOTER"
	VehicleCar             VehicleType = "CAR"
	VehicleMotorcycle      VehicleType = "MOTORCYCLE"
	VehicleElectricCar     VehicleType = "ELECTRIC_CAR"
)

func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleBicycle, VehicleElectricBike, VehicleElectricScooter,
		VehicleCar, VehicleMotorcycle, VehicleElectricCar:
		return VehicleType(s), nil
	default:
		return "", fmt.Errorf("invalid vehicle type: %q", s)
	}
}

// TravelMode returns the travel mode this vehicle is used with.
func (t VehicleType) TravelMode() TravelMode {
	switch t {
	case VehicleBicycle, VehicleElectricBike, VehicleElectricScooter:
		return ModeBike
	default:
		return ModeDrive
	}
}

type Vehicle struct {
	ID     string      `json:"id" gorm:"primaryKey;size:191"`
	UserID string      `json:"user_id" gorm:"not null;size:191;index"`
	Make   string      `json:"make" gorm:"not null;size:100"`
	Model  string      `json:"model" gorm:"not null;size:100"`
	Type   VehicleType `json:"type" gorm:"not null;size:32"`
	Year   int         `json:"year" gorm:"not null"`

	// CO2-equivalent kilograms emitted per kilometer traveled
	EmissionsCO2ePerKm float64 `json:"emissionsCO2ePerKm" gorm:"column:emissions_co2e_per_km;not null"`

	IsDefault bool      `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
