package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
)

// ObservationStore defines the interface for health observation persistence.
type ObservationStore interface {
	// Create saves a new health observation to the store.
	// Returns ErrInvalidEntity if the referenced plant does not exist.
	Create(ctx context.Context, obs *domain.HealthObservation) error

	// GetByID retrieves a health observation by its unique ID.
	// Returns ErrObservationNotFound if the observation does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthObservation, error)

	// FindByPlant retrieves a plant's observations ordered by observation
	// time, newest first. Returns an empty slice if there are none.
	FindByPlant(ctx context.Context, plantID uuid.UUID, limit, offset int) ([]*domain.HealthObservation, error)

	// Latest retrieves the most recent observation for a plant.
	// Returns ErrObservationNotFound if the plant has no observations.
	Latest(ctx context.Context, plantID uuid.UUID) (*domain.HealthObservation, error)

	// Delete removes a health observation.
	// Returns ErrObservationNotFound if the observation does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ObservationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ObservationStore
}
