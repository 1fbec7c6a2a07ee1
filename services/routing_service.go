// File: /services/routing_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"googlemaps.github.io/maps"

	"ecotrip-api/models"
)

// TransitVehicle identifies the kind of transit vehicle a step uses.
// Only the kinds with distinct emission factors are distinguished.
type TransitVehicle string

const (
	TransitBus       TransitVehicle = "BUS"
	TransitTram      TransitVehicle = "TRAM"
	TransitHeavyRail TransitVehicle = "HEAVY_RAIL"
	TransitOther     TransitVehicle = "OTHER"
)

// RouteStep is one leg segment of a returned route. A transit route can mix
// walking and transit steps, so emissions are accumulated per step.
type RouteStep struct {
	DistanceKm      float64
	DurationSeconds float64
	Mode            models.TravelMode
	TransitVehicle  TransitVehicle
}

type Route struct {
	Steps []RouteStep
}

func (r Route) DistanceKm() float64 {
	var total float64
	for _, step := range r.Steps {
		total += step.DistanceKm
	}
	return total
}

func (r Route) DurationSeconds() float64 {
	var total float64
	for _, step := range r.Steps {
		total += step.DurationSeconds
	}
	return total
}

// RouteProvider is the external routing/geocoding collaborator. Calls are
// single-attempt; failures surface as ErrRouteProvider or
// ErrAddressResolution and are never retried here.
type RouteProvider interface {
	Directions(ctx context.Context, origin, destination string, mode models.TravelMode) ([]Route, error)
	Autocomplete(ctx context.Context, query, sessionToken string) ([]string, error)
}

// GoogleRouteProvider backs RouteProvider with the Google Maps Directions
// and Places APIs.
type GoogleRouteProvider struct {
	client *maps.Client
}

func NewGoogleRouteProvider(apiKey string) (*GoogleRouteProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleRouteProvider{client: client}, nil
}

func (p *GoogleRouteProvider) Directions(ctx context.Context, origin, destination string, mode models.TravelMode) ([]Route, error) {
	req := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        toMapsMode(mode),
	}
	if mode == models.ModeTransit {
		req.TransitMode = []maps.TransitMode{
			maps.TransitModeBus,
			maps.TransitModeSubway,
			maps.TransitModeTram,
			maps.TransitModeRail,
			maps.TransitModeTrain,
		}
	}

	routes, _, err := p.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteProvider, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: no route between %q and %q", ErrAddressResolution, origin, destination)
	}

	converted := make([]Route, 0, len(routes))
	for _, route := range routes {
		var r Route
		for _, leg := range route.Legs {
			for _, step := range leg.Steps {
				r.Steps = append(r.Steps, convertStep(step))
			}
		}
		converted = append(converted, r)
	}
	return converted, nil
}

func (p *GoogleRouteProvider) Autocomplete(ctx context.Context, query, sessionToken string) ([]string, error) {
	token, err := uuid.Parse(sessionToken)
	if err != nil {
		token = uuid.New()
	}

	req := &maps.PlaceAutocompleteRequest{
		Input:        query,
		SessionToken: maps.PlaceAutocompleteSessionToken(token),
	}

	resp, err := p.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteProvider, err)
	}

	addresses := make([]string, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		addresses = append(addresses, prediction.Description)
	}
	return addresses, nil
}

func toMapsMode(mode models.TravelMode) maps.Mode {
	switch mode {
	case models.ModeWalk:
		return maps.TravelModeWalking
	case models.ModeBike:
		return maps.TravelModeBicycling
	case models.ModeTransit:
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}

func convertStep(step *maps.Step) RouteStep {
	converted := RouteStep{
		DistanceKm:      float64(step.Distance.Meters) / 1000,
		DurationSeconds: step.Duration.Seconds(),
	}

	switch step.TravelMode {
	case "WALKING":
		converted.Mode = models.ModeWalk
	case "BICYCLING":
		converted.Mode = models.ModeBike
	case "TRANSIT":
		converted.Mode = models.ModeTransit
		converted.TransitVehicle = TransitOther
		if step.TransitDetails != nil {
			switch step.TransitDetails.Line.Vehicle.Type {
			case "BUS", "INTERCITY_BUS", "TROLLEYBUS":
				converted.TransitVehicle = TransitBus
			case "TRAM":
				converted.TransitVehicle = TransitTram
			case "HEAVY_RAIL", "RAIL", "LONG_DISTANCE_TRAIN":
				converted.TransitVehicle = TransitHeavyRail
			}
		}
	default:
		converted.Mode = models.ModeDrive
	}

	return converted
}
