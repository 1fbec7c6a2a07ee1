// File: /services/estimator_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"ecotrip-api/models"
)

// Per-km emission factors in kg CO2e. These include amortized vehicle
// production emissions and fuel emissions, but not food emissions (e.g.
// from walking). Public transport is per person.
const (
	emissionsPerKmWalking     = 0.0
	emissionsPerKmBicycling   = 0.0
	emissionsPerKmCarAverage  = 0.118
	emissionsPerPersonKmTram  = 0.001
	emissionsPerPersonKmBus   = 0.089
	emissionsPerPersonKmTrain = 0.005
)

// CostFactors holds the configurable money side of an estimate.
type CostFactors struct {
	FuelPriceNOKPerLiter     float64
	FuelConsumptionLPer100Km float64
	TransitCostPerKmNOK      float64
}

// DriveCostPerKm is fuel price times consumption, normalized to one km.
func (f CostFactors) DriveCostPerKm() float64 {
	return f.FuelPriceNOKPerLiter * f.FuelConsumptionLPer100Km / 100
}

// TripEstimate is the computed outcome for one mode over one route.
type TripEstimate struct {
	DistanceKm      float64 `json:"distanceKm"`
	DurationSeconds float64 `json:"durationSeconds"`
	EmissionsCO2eKg float64 `json:"emissionsCO2eKg"`
	CostNOK         float64 `json:"costNOK"`
}

// EstimateResult pairs the requested mode's estimate with the driving
// baseline it is compared against.
type EstimateResult struct {
	Mode                 TripEstimate `json:"mode"`
	Drive                TripEstimate `json:"drive"`
	SavedEmissionsCO2eKg float64      `json:"savedEmissionsCO2eKg"`
	SavedCostNOK         float64      `json:"savedCostNOK"`
}

// EstimatorService computes emissions and cost for a trip and its driving
// baseline. It is pure given the provider's responses; persisting the
// resulting trip is the caller's concern.
type EstimatorService struct {
	provider RouteProvider
	costs    CostFactors
}

func NewEstimatorService(provider RouteProvider, costs CostFactors) *EstimatorService {
	return &EstimatorService{provider: provider, costs: costs}
}

// Estimate resolves the route for the requested mode, computes its
// emissions and cost, and derives savings against a driving baseline over
// the same origin/destination. The baseline vehicle is normally the user's
// default vehicle; nil falls back to the system average car factor.
//
// Mode drive requires a vehicle with a positive emissions factor.
func (s *EstimatorService) Estimate(ctx context.Context, origin, destination string, mode models.TravelMode, vehicle, baseline *models.Vehicle) (*EstimateResult, error) {
	if _, err := models.ParseTravelMode(string(mode)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if mode == models.ModeDrive {
		if vehicle == nil {
			return nil, fmt.Errorf("%w: driving requires a vehicle", ErrInvalidVehicle)
		}
		if vehicle.EmissionsCO2ePerKm <= 0 {
			return nil, fmt.Errorf("%w: emissions factor must be positive", ErrInvalidVehicle)
		}
	}

	routes, err := s.provider.Directions(ctx, origin, destination, mode)
	if err != nil {
		return nil, err
	}
	modeEstimate := s.bestEstimate(routes, vehicle)

	// Reuse the routes when the trip itself is a drive, otherwise fetch the
	// driving alternative for the same endpoints.
	driveRoutes := routes
	if mode != models.ModeDrive {
		driveRoutes, err = s.provider.Directions(ctx, origin, destination, models.ModeDrive)
		if err != nil {
			return nil, err
		}
	}
	driveEstimate := s.bestEstimate(driveRoutes, baseline)

	result := &EstimateResult{
		Mode:                 modeEstimate,
		Drive:                driveEstimate,
		SavedEmissionsCO2eKg: math.Max(0, driveEstimate.EmissionsCO2eKg-modeEstimate.EmissionsCO2eKg),
		SavedCostNOK:         math.Max(0, driveEstimate.CostNOK-modeEstimate.CostNOK),
	}
	return result, nil
}

// Alternatives estimates all supported modes between two addresses, for
// side-by-side comparison before a trip is logged. Modes without a viable
// route are omitted.
func (s *EstimatorService) Alternatives(ctx context.Context, origin, destination string) (map[models.TravelMode]TripEstimate, error) {
	modes := []models.TravelMode{models.ModeWalk, models.ModeBike, models.ModeTransit, models.ModeDrive}

	alternatives := make(map[models.TravelMode]TripEstimate)
	for _, mode := range modes {
		routes, err := s.provider.Directions(ctx, origin, destination, mode)
		if errors.Is(err, ErrAddressResolution) {
			continue
		}
		if err != nil {
			return nil, err
		}
		alternatives[mode] = s.bestEstimate(routes, nil)
	}

	if len(alternatives) == 0 {
		return nil, fmt.Errorf("%w: no routes between %q and %q", ErrAddressResolution, origin, destination)
	}
	return alternatives, nil
}

// bestEstimate folds each route's steps into an estimate and keeps the
// lowest-emissions one.
func (s *EstimatorService) bestEstimate(routes []Route, vehicle *models.Vehicle) TripEstimate {
	var best TripEstimate
	for i, route := range routes {
		current := s.routeEstimate(route, vehicle)
		if i == 0 || current.EmissionsCO2eKg < best.EmissionsCO2eKg {
			best = current
		}
	}
	return best
}

func (s *EstimatorService) routeEstimate(route Route, vehicle *models.Vehicle) TripEstimate {
	var estimate TripEstimate
	for _, step := range route.Steps {
		estimate.DistanceKm += step.DistanceKm
		estimate.DurationSeconds += step.DurationSeconds
		estimate.EmissionsCO2eKg += s.stepEmissions(step, vehicle)
		estimate.CostNOK += s.stepCost(step)
	}
	return estimate
}

// stepEmissions applies the vehicle's own factor when the vehicle is used
// for this kind of step, otherwise the per-mode constants.
func (s *EstimatorService) stepEmissions(step RouteStep, vehicle *models.Vehicle) float64 {
	switch step.Mode {
	case models.ModeWalk:
		return step.DistanceKm * emissionsPerKmWalking
	case models.ModeBike:
		if vehicle != nil && vehicle.Type.TravelMode() == models.ModeBike {
			return step.DistanceKm * vehicle.EmissionsCO2ePerKm
		}
		return step.DistanceKm * emissionsPerKmBicycling
	case models.ModeTransit:
		switch step.TransitVehicle {
		case TransitBus:
			return step.DistanceKm * emissionsPerPersonKmBus
		case TransitTram:
			return step.DistanceKm * emissionsPerPersonKmTram
		case TransitHeavyRail:
			return step.DistanceKm * emissionsPerPersonKmTrain
		default:
			return 0
		}
	default:
		if vehicle != nil && vehicle.Type.TravelMode() == models.ModeDrive {
			return step.DistanceKm * vehicle.EmissionsCO2ePerKm
		}
		return step.DistanceKm * emissionsPerKmCarAverage
	}
}

func (s *EstimatorService) stepCost(step RouteStep) float64 {
	switch step.Mode {
	case models.ModeDrive:
		return step.DistanceKm * s.costs.DriveCostPerKm()
	case models.ModeTransit:
		return step.DistanceKm * s.costs.TransitCostPerKmNOK
	default:
		return 0
	}
}
