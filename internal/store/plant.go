package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
)

// PlantStore defines the interface for plant data persistence.
type PlantStore interface {
	// Create saves a new plant to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Plant if data is invalid.
	Create(ctx context.Context, plant *domain.Plant) error

	// GetByID retrieves a plant by its unique ID.
	// Returns ErrPlantNotFound if the plant does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plant, error)

	// List retrieves all plants ordered by creation time, newest first.
	// Returns an empty slice if the collection is empty.
	List(ctx context.Context, limit, offset int) ([]*domain.Plant, error)

	// Count returns the total number of plants in the collection.
	Count(ctx context.Context) (int, error)

	// Update saves changes to an existing plant.
	// Returns ErrPlantNotFound if the plant does not exist.
	// Returns validation errors if the plant data is invalid.
	Update(ctx context.Context, plant *domain.Plant) error

	// Delete removes a plant and, through database cascades, its reminders,
	// care events, and health observations.
	// Returns ErrPlantNotFound if the plant does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PlantStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) PlantStore
}
