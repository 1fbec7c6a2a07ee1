// File: /services/errors.go
package services

import "errors"

// Error kinds surfaced to the HTTP boundary. Controllers map these to
// status codes with errors.Is; everything else is treated as an internal
// failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidVehicle     = errors.New("invalid vehicle")
	ErrAddressResolution  = errors.New("address could not be resolved")
	ErrRouteProvider      = errors.New("routing provider failure")
	ErrInsufficientPoints = errors.New("insufficient points")
)
