package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or value object fails
	// validation. Specific validation errors wrap it so callers can check
	// the whole class with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration is returned when the care strategy setup is broken,
	// for example when no default strategy is registered. This indicates a
	// deployment defect, not a runtime condition to recover from.
	ErrConfiguration = errors.New("configuration error")
)
