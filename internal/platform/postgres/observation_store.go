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

// PostgresObservationStore implements the store.ObservationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresObservationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresObservationStore creates a new PostgreSQL implementation of the ObservationStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresObservationStore(db store.DBTX, logger *slog.Logger) *PostgresObservationStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforces required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresObservationStore{
		db:     db,
		logger: logger.With(slog.String("component", "observation_store")),
	}
}

// Ensure PostgresObservationStore implements store.ObservationStore interface
var _ store.ObservationStore = (*PostgresObservationStore)(nil)

// WithTx implements store.ObservationStore.WithTx
func (s *PostgresObservationStore) WithTx(tx *sql.Tx) store.ObservationStore {
	return &PostgresObservationStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ObservationStore.Create
// Returns store.ErrInvalidEntity if the referenced plant does not exist.
func (s *PostgresObservationStore) Create(ctx context.Context, obs *domain.HealthObservation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := obs.Validate(); err != nil {
		log.Warn("observation validation failed during create",
			slog.String("error", err.Error()),
			slog.String("observation_id", obs.ID.String()))
		return err
	}

	query := `
		INSERT INTO health_observations (id, plant_id, observed_at, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		obs.ID,
		obs.PlantID,
		obs.ObservedAt,
		obs.Status,
		obs.Notes,
		obs.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during observation creation",
				slog.String("observation_id", obs.ID.String()),
				slog.String("plant_id", obs.PlantID.String()))
			return fmt.Errorf("%w: plant with ID %s not found",
				store.ErrInvalidEntity, obs.PlantID)
		}
		log.Error("failed to create observation",
			slog.String("error", err.Error()),
			slog.String("observation_id", obs.ID.String()))
		return MapError(err)
	}

	log.Info("observation created successfully",
		slog.String("observation_id", obs.ID.String()),
		slog.String("plant_id", obs.PlantID.String()),
		slog.String("status", string(obs.Status)))
	return nil
}

// GetByID implements store.ObservationStore.GetByID
// Returns store.ErrObservationNotFound if the observation does not exist.
func (s *PostgresObservationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.HealthObservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, plant_id, observed_at, status, notes, created_at
		FROM health_observations
		WHERE id = $1
	`

	obs, err := scanObservation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("observation not found", slog.String("observation_id", id.String()))
			return nil, store.ErrObservationNotFound
		}
		log.Error("failed to get observation by ID",
			slog.String("error", err.Error()),
			slog.String("observation_id", id.String()))
		return nil, err
	}

	return obs, nil
}

// FindByPlant implements store.ObservationStore.FindByPlant
// Observations are ordered by observation time, newest first.
func (s *PostgresObservationStore) FindByPlant(
	ctx context.Context,
	plantID uuid.UUID,
	limit, offset int,
) ([]*domain.HealthObservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, plant_id, observed_at, status, notes, created_at
		FROM health_observations
		WHERE plant_id = $1
		ORDER BY observed_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, plantID, limit, offset)
	if err != nil {
		log.Error("failed to query observations",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	observations := []*domain.HealthObservation{}
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			log.Error("failed to scan observation row", slog.String("error", err.Error()))
			return nil, err
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return observations, nil
}

// Latest implements store.ObservationStore.Latest
// Returns store.ErrObservationNotFound if the plant has no observations.
func (s *PostgresObservationStore) Latest(ctx context.Context, plantID uuid.UUID) (*domain.HealthObservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, plant_id, observed_at, status, notes, created_at
		FROM health_observations
		WHERE plant_id = $1
		ORDER BY observed_at DESC
		LIMIT 1
	`

	obs, err := scanObservation(s.db.QueryRowContext(ctx, query, plantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrObservationNotFound
		}
		log.Error("failed to get latest observation",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, err
	}

	return obs, nil
}

// Delete implements store.ObservationStore.Delete
func (s *PostgresObservationStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM health_observations WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete observation",
			slog.String("error", err.Error()),
			slog.String("observation_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrObservationNotFound); err != nil {
		log.Debug("observation not found for delete", slog.String("observation_id", id.String()))
		return err
	}

	log.Info("observation deleted successfully", slog.String("observation_id", id.String()))
	return nil
}

func scanObservation(row rowScanner) (*domain.HealthObservation, error) {
	var obs domain.HealthObservation
	var status string

	err := row.Scan(
		&obs.ID,
		&obs.PlantID,
		&obs.ObservedAt,
		&status,
		&obs.Notes,
		&obs.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	obs.Status = domain.HealthStatus(status)
	return &obs, nil
}
