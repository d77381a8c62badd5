package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
	ErrPresetNotFound  = fmt.Errorf("%w: preset", ErrNotFound)

	// Validation errors
	ErrInvalidWirePair    = errors.New("coil wire pair must contain two distinct wires")
	ErrInsufficientData   = errors.New("insufficient measurement data for analysis")
	ErrUnknownObservation = errors.New("unrecognized probe observation text")
	ErrUnknownWiringMode  = errors.New("unknown wiring mode")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWirePair) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrUnknownObservation) ||
		errors.Is(err, ErrUnknownWiringMode)
}
