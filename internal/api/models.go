package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
)

// CreatePlantRequest is the request body for adding a plant.
// Category is optional and defaults to the general-care category.
type CreatePlantRequest struct {
	Name       string    `json:"name"        validate:"required,max=100"`
	Species    string    `json:"species"     validate:"max=200"`
	Category   string    `json:"category"`
	AcquiredAt time.Time `json:"acquired_at" validate:"required"`
	Location   string    `json:"location"    validate:"max=200"`
	Notes      string    `json:"notes"`
}

// UpdatePlantRequest is the request body for editing a plant's details.
type UpdatePlantRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Species  string `json:"species"  validate:"max=200"`
	Category string `json:"category"`
	Location string `json:"location" validate:"max=200"`
	Notes    string `json:"notes"`
}

// CreateReminderRequest is the request body for a manually authored reminder.
// Recurrence is optional; omitting it creates a one-off reminder.
type CreateReminderRequest struct {
	PlantID     uuid.UUID              `json:"plant_id"    validate:"required"`
	Type        string                 `json:"type"        validate:"required"`
	Title       string                 `json:"title"       validate:"required,max=200"`
	Description string                 `json:"description"`
	DueDate     time.Time              `json:"due_date"    validate:"required"`
	Recurrence  *domain.RecurrenceRule `json:"recurrence"`
}

// UpdateReminderRequest is the request body for editing a reminder.
type UpdateReminderRequest struct {
	Title       string                 `json:"title"       validate:"required,max=200"`
	Description string                 `json:"description"`
	DueDate     time.Time              `json:"due_date"    validate:"required"`
	Recurrence  *domain.RecurrenceRule `json:"recurrence"`
}

// CompleteReminderRequest is the optional request body for completing a
// reminder. Notes are copied onto the recorded care event.
type CompleteReminderRequest struct {
	Notes string `json:"notes"`
}

// CreateCareEventRequest is the request body for logging care performed
// without a reminder. The plant comes from the URL.
type CreateCareEventRequest struct {
	Type       string    `json:"type"        validate:"required"`
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
	Notes      string    `json:"notes"`
}

// CreateObservationRequest is the request body for recording a health check.
// The plant comes from the URL.
type CreateObservationRequest struct {
	ObservedAt time.Time `json:"observed_at" validate:"required"`
	Status     string    `json:"status"      validate:"required"`
	Notes      string    `json:"notes"`
}
