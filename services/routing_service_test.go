// File: /services/routing_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"ecotrip-api/models"
)

func TestConvertStepModes(t *testing.T) {
	walk := convertStep(&maps.Step{
		Distance:   maps.Distance{Meters: 1200},
		Duration:   15 * time.Minute,
		TravelMode: "WALKING",
	})
	assert.Equal(t, models.ModeWalk, walk.Mode)
	assert.InDelta(t, 1.2, walk.DistanceKm, 1e-9)
	assert.InDelta(t, 900, walk.DurationSeconds, 1e-9)

	drive := convertStep(&maps.Step{
		Distance:   maps.Distance{Meters: 5000},
		Duration:   10 * time.Minute,
		TravelMode: "DRIVING",
	})
	assert.Equal(t, models.ModeDrive, drive.Mode)
}

func TestConvertStepTransitVehicles(t *testing.T) {
	transitStep := func(vehicleType string) *maps.Step {
		return &maps.Step{
			Distance:   maps.Distance{Meters: 8000},
			Duration:   20 * time.Minute,
			TravelMode: "TRANSIT",
			TransitDetails: &maps.TransitDetails{
				Line: maps.TransitLine{
					Vehicle: maps.TransitLineVehicle{Type: vehicleType},
				},
			},
		}
	}

	assert.Equal(t, TransitBus, convertStep(transitStep("BUS")).TransitVehicle)
	assert.Equal(t, TransitBus, convertStep(transitStep("TROLLEYBUS")).TransitVehicle)
	assert.Equal(t, TransitTram, convertStep(transitStep("TRAM")).TransitVehicle)
	assert.Equal(t, TransitHeavyRail, convertStep(transitStep("HEAVY_RAIL")).TransitVehicle)

	// Kinds without their own factor, including a line with no vehicle
	// information at all, fall back to OTHER.
	assert.Equal(t, TransitOther, convertStep(transitStep("FERRY")).TransitVehicle)
	assert.Equal(t, TransitOther, convertStep(transitStep("")).TransitVehicle)

	bare := convertStep(&maps.Step{
		Distance:   maps.Distance{Meters: 8000},
		Duration:   20 * time.Minute,
		TravelMode: "TRANSIT",
	})
	assert.Equal(t, models.ModeTransit, bare.Mode)
	assert.Equal(t, TransitOther, bare.TransitVehicle)
}

func TestToMapsMode(t *testing.T) {
	assert.Equal(t, maps.TravelModeWalking, toMapsMode(models.ModeWalk))
	assert.Equal(t, maps.TravelModeBicycling, toMapsMode(models.ModeBike))
	assert.Equal(t, maps.TravelModeTransit, toMapsMode(models.ModeTransit))
	assert.Equal(t, maps.TravelModeDriving, toMapsMode(models.ModeDrive))
}
