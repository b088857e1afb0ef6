package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// PostgresReminderStore implements the store.ReminderStore interface
// using a PostgreSQL database as the storage backend. Recurrence rules are
// stored as JSONB so the schema does not need to change when the rule shape
// grows new optional fields.
type PostgresReminderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReminderStore creates a new PostgreSQL implementation of the ReminderStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresReminderStore(db store.DBTX, logger *slog.Logger) *PostgresReminderStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforces required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReminderStore{
		db:     db,
		logger: logger.With(slog.String("component", "reminder_store")),
	}
}

// Ensure PostgresReminderStore implements store.ReminderStore interface
var _ store.ReminderStore = (*PostgresReminderStore)(nil)

// WithTx implements store.ReminderStore.WithTx
func (s *PostgresReminderStore) WithTx(tx *sql.Tx) store.ReminderStore {
	return &PostgresReminderStore{
		db:     tx,
		logger: s.logger,
	}
}

const reminderColumns = `id, plant_id, type, title, description, due_date,
	recurrence, is_completed, completed_at, created_at, updated_at`

// Create implements store.ReminderStore.Create
// Returns store.ErrInvalidEntity if the referenced plant does not exist.
func (s *PostgresReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		log.Warn("reminder validation failed during create",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	recurrence, err := marshalRecurrence(reminder.Recurrence)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		reminder.ID,
		reminder.PlantID,
		reminder.Type,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		recurrence,
		reminder.IsCompleted,
		reminder.CompletedAt,
		reminder.CreatedAt,
		reminder.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during reminder creation",
				slog.String("reminder_id", reminder.ID.String()),
				slog.String("plant_id", reminder.PlantID.String()))
			return fmt.Errorf("%w: plant with ID %s not found",
				store.ErrInvalidEntity, reminder.PlantID)
		}
		log.Error("failed to create reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return MapError(err)
	}

	log.Info("reminder created successfully",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("plant_id", reminder.PlantID.String()),
		slog.String("type", string(reminder.Type)))
	return nil
}

// GetByID implements store.ReminderStore.GetByID
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

	reminder, err := scanReminder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("reminder not found", slog.String("reminder_id", id.String()))
			return nil, store.ErrReminderNotFound
		}
		log.Error("failed to get reminder by ID",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return nil, err
	}

	return reminder, nil
}

// FindByPlant implements store.ReminderStore.FindByPlant
func (s *PostgresReminderStore) FindByPlant(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE plant_id = $1
		ORDER BY due_date ASC
	`
	return s.queryReminders(ctx, query, plantID)
}

// FindActiveByPlant implements store.ReminderStore.FindActiveByPlant
func (s *PostgresReminderStore) FindActiveByPlant(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE plant_id = $1 AND is_completed = FALSE
		ORDER BY due_date ASC
	`
	return s.queryReminders(ctx, query, plantID)
}

// FindDueBefore implements store.ReminderStore.FindDueBefore
// It retrieves active reminders across all plants due on or before the cutoff.
func (s *PostgresReminderStore) FindDueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE is_completed = FALSE AND due_date <= $1
		ORDER BY due_date ASC
	`
	return s.queryReminders(ctx, query, cutoff)
}

// Update implements store.ReminderStore.Update
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		log.Warn("reminder validation failed during update",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	recurrence, err := marshalRecurrence(reminder.Recurrence)
	if err != nil {
		return err
	}

	query := `
		UPDATE reminders
		SET title = $1, description = $2, due_date = $3, recurrence = $4,
			is_completed = $5, completed_at = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		reminder.Title,
		reminder.Description,
		reminder.DueDate,
		recurrence,
		reminder.IsCompleted,
		reminder.CompletedAt,
		reminder.UpdatedAt,
		reminder.ID,
	)
	if err != nil {
		log.Error("failed to update reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReminderNotFound); err != nil {
		log.Debug("reminder not found for update",
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	log.Info("reminder updated successfully",
		slog.String("reminder_id", reminder.ID.String()),
		slog.Bool("is_completed", reminder.IsCompleted))
	return nil
}

// Delete implements store.ReminderStore.Delete
func (s *PostgresReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReminderNotFound); err != nil {
		log.Debug("reminder not found for delete", slog.String("reminder_id", id.String()))
		return err
	}

	log.Info("reminder deleted successfully", slog.String("reminder_id", id.String()))
	return nil
}

func (s *PostgresReminderStore) queryReminders(ctx context.Context, query string, args ...any) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query reminders", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	reminders := []*domain.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			log.Error("failed to scan reminder row", slog.String("error", err.Error()))
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return reminders, nil
}

// marshalRecurrence serializes a recurrence rule for JSONB storage.
// A nil rule maps to SQL NULL.
func marshalRecurrence(rule *domain.RecurrenceRule) ([]byte, error) {
	if rule == nil {
		return nil, nil
	}
	data, err := json.Marshal(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recurrence rule: %w", err)
	}
	return data, nil
}

// unmarshalRecurrence deserializes a stored recurrence rule and re-validates
// it, so a row corrupted outside the application surfaces as
// store.ErrInvalidEntity rather than as undefined scheduling behavior.
func unmarshalRecurrence(data []byte) (*domain.RecurrenceRule, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rule domain.RecurrenceRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return nil, fmt.Errorf("%w: malformed recurrence rule: %v", store.ErrInvalidEntity, err)
	}
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: stored recurrence rule failed validation: %v", store.ErrInvalidEntity, err)
	}
	return &rule, nil
}

func scanReminder(row rowScanner) (*domain.Reminder, error) {
	var reminder domain.Reminder
	var actionType string
	var recurrence []byte

	err := row.Scan(
		&reminder.ID,
		&reminder.PlantID,
		&actionType,
		&reminder.Title,
		&reminder.Description,
		&reminder.DueDate,
		&recurrence,
		&reminder.IsCompleted,
		&reminder.CompletedAt,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reminder.Type = domain.ActionType(actionType)
	rule, err := unmarshalRecurrence(recurrence)
	if err != nil {
		return nil, err
	}
	reminder.Recurrence = rule

	return &reminder, nil
}
