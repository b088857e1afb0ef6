package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
)

// CareEventStore defines the interface for care event data persistence.
type CareEventStore interface {
	// Create saves a new care event to the store.
	// Returns ErrInvalidEntity if the referenced plant does not exist.
	Create(ctx context.Context, event *domain.CareEvent) error

	// GetByID retrieves a care event by its unique ID.
	// Returns ErrCareEventNotFound if the event does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error)

	// FindByPlant retrieves a plant's care history ordered by occurrence
	// time, newest first. Returns an empty slice if there is no history.
	FindByPlant(ctx context.Context, plantID uuid.UUID, limit, offset int) ([]*domain.CareEvent, error)

	// CountByPlantAndType returns how many events of the given type have
	// been recorded for the plant. Used to enforce recurrence occurrence
	// limits.
	CountByPlantAndType(ctx context.Context, plantID uuid.UUID, action domain.ActionType) (int, error)

	// Delete removes a care event.
	// Returns ErrCareEventNotFound if the event does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CareEventStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CareEventStore
}
