package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
)

// ReminderStore defines the interface for reminder data persistence.
type ReminderStore interface {
	// Create saves a new reminder to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the referenced plant does not exist.
	Create(ctx context.Context, reminder *domain.Reminder) error

	// GetByID retrieves a reminder by its unique ID.
	// Returns ErrReminderNotFound if the reminder does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)

	// FindByPlant retrieves all reminders for a plant ordered by due date.
	// Returns an empty slice if the plant has no reminders.
	FindByPlant(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error)

	// FindActiveByPlant retrieves the plant's reminders that are not completed,
	// ordered by due date.
	FindActiveByPlant(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error)

	// FindDueBefore retrieves active reminders across all plants whose due
	// date falls on or before the cutoff, ordered by due date.
	FindDueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Reminder, error)

	// Update saves changes to an existing reminder, including lifecycle
	// transitions performed by the domain (completion, reactivation).
	// Returns ErrReminderNotFound if the reminder does not exist.
	Update(ctx context.Context, reminder *domain.Reminder) error

	// Delete removes a reminder.
	// Returns ErrReminderNotFound if the reminder does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ReminderStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReminderStore
}
