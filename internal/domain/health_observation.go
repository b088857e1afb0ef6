package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HealthStatus describes a plant's condition at observation time.
type HealthStatus string

// Possible health status values, from best to worst.
const (
	HealthThriving HealthStatus = "thriving"
	HealthHealthy  HealthStatus = "healthy"
	HealthWilting  HealthStatus = "wilting"
	HealthSick     HealthStatus = "sick"
	HealthCritical HealthStatus = "critical"
)

// Valid reports whether the health status is one of the known values.
func (s HealthStatus) Valid() bool {
	switch s {
	case HealthThriving, HealthHealthy, HealthWilting, HealthSick, HealthCritical:
		return true
	default:
		return false
	}
}

// HealthObservation-specific validation errors.
var (
	// ErrObservationIDEmpty is returned when an observation ID is empty or nil.
	ErrObservationIDEmpty = fmt.Errorf("%w: observation ID cannot be empty", ErrValidation)

	// ErrObservationPlantIDEmpty is returned when an observation's plant ID is empty or nil.
	ErrObservationPlantIDEmpty = fmt.Errorf(
		"%w: observation plant ID cannot be empty", ErrValidation)

	// ErrObservationStatusInvalid is returned when the health status is not a known value.
	ErrObservationStatusInvalid = fmt.Errorf("%w: unknown health status", ErrValidation)
)

// HealthObservation records a plant's observed condition on a date.
type HealthObservation struct {
	ID         uuid.UUID    `json:"id"`
	PlantID    uuid.UUID    `json:"plant_id"`
	ObservedAt time.Time    `json:"observed_at"`
	Status     HealthStatus `json:"status"`
	Notes      string       `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// NewHealthObservation creates a new HealthObservation with a generated ID.
func NewHealthObservation(
	plantID uuid.UUID,
	observedAt time.Time,
	status HealthStatus,
	notes string,
) (*HealthObservation, error) {
	obs := &HealthObservation{
		ID:         uuid.New(),
		PlantID:    plantID,
		ObservedAt: observedAt,
		Status:     status,
		Notes:      notes,
		CreatedAt:  time.Now().UTC(),
	}

	if err := obs.Validate(); err != nil {
		return nil, err
	}

	return obs, nil
}

// Validate checks if the HealthObservation has valid data.
func (o *HealthObservation) Validate() error {
	if o.ID == uuid.Nil {
		return ErrObservationIDEmpty
	}
	if o.PlantID == uuid.Nil {
		return ErrObservationPlantIDEmpty
	}
	if !o.Status.Valid() {
		return ErrObservationStatusInvalid
	}
	return nil
}
