package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// PostgresCareEventStore implements the store.CareEventStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCareEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCareEventStore creates a new PostgreSQL implementation of the CareEventStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCareEventStore(db store.DBTX, logger *slog.Logger) *PostgresCareEventStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforces required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCareEventStore{
		db:     db,
		logger: logger.With(slog.String("component", "care_event_store")),
	}
}

// Ensure PostgresCareEventStore implements store.CareEventStore interface
var _ store.CareEventStore = (*PostgresCareEventStore)(nil)

// WithTx implements store.CareEventStore.WithTx
func (s *PostgresCareEventStore) WithTx(tx *sql.Tx) store.CareEventStore {
	return &PostgresCareEventStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CareEventStore.Create
// Returns store.ErrInvalidEntity if the referenced plant does not exist.
func (s *PostgresCareEventStore) Create(ctx context.Context, event *domain.CareEvent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("care event validation failed during create",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	query := `
		INSERT INTO care_events (id, plant_id, type, occurred_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		event.ID,
		event.PlantID,
		event.Type,
		event.OccurredAt,
		event.Notes,
		event.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during care event creation",
				slog.String("event_id", event.ID.String()),
				slog.String("plant_id", event.PlantID.String()))
			return fmt.Errorf("%w: plant with ID %s not found",
				store.ErrInvalidEntity, event.PlantID)
		}
		log.Error("failed to create care event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return MapError(err)
	}

	log.Info("care event created successfully",
		slog.String("event_id", event.ID.String()),
		slog.String("plant_id", event.PlantID.String()),
		slog.String("type", string(event.Type)))
	return nil
}

// GetByID implements store.CareEventStore.GetByID
// Returns store.ErrCareEventNotFound if the event does not exist.
func (s *PostgresCareEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, plant_id, type, occurred_at, notes, created_at
		FROM care_events
		WHERE id = $1
	`

	event, err := scanCareEvent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("care event not found", slog.String("event_id", id.String()))
			return nil, store.ErrCareEventNotFound
		}
		log.Error("failed to get care event by ID",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return nil, err
	}

	return event, nil
}

// FindByPlant implements store.CareEventStore.FindByPlant
// Events are ordered by occurrence time, newest first.
func (s *PostgresCareEventStore) FindByPlant(
	ctx context.Context,
	plantID uuid.UUID,
	limit, offset int,
) ([]*domain.CareEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, plant_id, type, occurred_at, notes, created_at
		FROM care_events
		WHERE plant_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, plantID, limit, offset)
	if err != nil {
		log.Error("failed to query care events",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	events := []*domain.CareEvent{}
	for rows.Next() {
		event, err := scanCareEvent(rows)
		if err != nil {
			log.Error("failed to scan care event row", slog.String("error", err.Error()))
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return events, nil
}

// CountByPlantAndType implements store.CareEventStore.CountByPlantAndType
func (s *PostgresCareEventStore) CountByPlantAndType(
	ctx context.Context,
	plantID uuid.UUID,
	action domain.ActionType,
) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	query := `SELECT COUNT(*) FROM care_events WHERE plant_id = $1 AND type = $2`
	err := s.db.QueryRowContext(ctx, query, plantID, action).Scan(&count)
	if err != nil {
		log.Error("failed to count care events",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()),
			slog.String("type", string(action)))
		return 0, err
	}
	return count, nil
}

// Delete implements store.CareEventStore.Delete
func (s *PostgresCareEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM care_events WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete care event",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCareEventNotFound); err != nil {
		log.Debug("care event not found for delete", slog.String("event_id", id.String()))
		return err
	}

	log.Info("care event deleted successfully", slog.String("event_id", id.String()))
	return nil
}

func scanCareEvent(row rowScanner) (*domain.CareEvent, error) {
	var event domain.CareEvent
	var actionType string

	err := row.Scan(
		&event.ID,
		&event.PlantID,
		&actionType,
		&event.OccurredAt,
		&event.Notes,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Type = domain.ActionType(actionType)
	return &event, nil
}
