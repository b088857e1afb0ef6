package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CareEvent-specific validation errors.
var (
	// ErrCareEventIDEmpty is returned when a care event ID is empty or nil.
	ErrCareEventIDEmpty = fmt.Errorf("%w: care event ID cannot be empty", ErrValidation)

	// ErrCareEventPlantIDEmpty is returned when a care event's plant ID is empty or nil.
	ErrCareEventPlantIDEmpty = fmt.Errorf("%w: care event plant ID cannot be empty", ErrValidation)

	// ErrCareEventTypeInvalid is returned when a care event's action type is
	// not one of the schedulable types.
	ErrCareEventTypeInvalid = fmt.Errorf("%w: invalid care event type", ErrValidation)
)

// CareEvent records that a care action was performed on a plant on a date.
// The reminder generator reads these as anchor dates for "when was this
// last done"; it never modifies them.
type CareEvent struct {
	ID         uuid.UUID  `json:"id"`
	PlantID    uuid.UUID  `json:"plant_id"`
	Type       ActionType `json:"type"`
	OccurredAt time.Time  `json:"occurred_at"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewCareEvent creates a new CareEvent with a generated ID.
// Only actionable types can be logged; Custom and Note reminders do not
// produce care history.
func NewCareEvent(
	plantID uuid.UUID,
	actionType ActionType,
	occurredAt time.Time,
	notes string,
) (*CareEvent, error) {
	event := &CareEvent{
		ID:         uuid.New(),
		PlantID:    plantID,
		Type:       actionType,
		OccurredAt: occurredAt,
		Notes:      notes,
		CreatedAt:  time.Now().UTC(),
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the CareEvent has valid data.
func (e *CareEvent) Validate() error {
	if e.ID == uuid.Nil {
		return ErrCareEventIDEmpty
	}
	if e.PlantID == uuid.Nil {
		return ErrCareEventPlantIDEmpty
	}
	if !e.Type.Actionable() {
		return ErrCareEventTypeInvalid
	}
	return nil
}
