package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// PostgresPlantStore implements the store.PlantStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlantStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlantStore creates a new PostgreSQL implementation of the PlantStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPlantStore(db store.DBTX, logger *slog.Logger) *PostgresPlantStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforces required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlantStore{
		db:     db,
		logger: logger.With(slog.String("component", "plant_store")),
	}
}

// Ensure PostgresPlantStore implements store.PlantStore interface
var _ store.PlantStore = (*PostgresPlantStore)(nil)

// WithTx implements store.PlantStore.WithTx
// It returns a new PlantStore instance that uses the provided transaction.
func (s *PostgresPlantStore) WithTx(tx *sql.Tx) store.PlantStore {
	return &PostgresPlantStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlantStore.Create
// It saves a new plant to the database, handling domain validation.
func (s *PostgresPlantStore) Create(ctx context.Context, plant *domain.Plant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := plant.Validate(); err != nil {
		log.Warn("plant validation failed during create",
			slog.String("error", err.Error()),
			slog.String("plant_id", plant.ID.String()))
		return err
	}

	query := `
		INSERT INTO plants (id, name, species, category, acquired_at, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		plant.ID,
		plant.Name,
		plant.Species,
		plant.Category,
		plant.AcquiredAt,
		plant.Location,
		plant.Notes,
		plant.CreatedAt,
		plant.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create plant",
			slog.String("error", err.Error()),
			slog.String("plant_id", plant.ID.String()))
		return MapError(err)
	}

	log.Info("plant created successfully",
		slog.String("plant_id", plant.ID.String()),
		slog.String("category", string(plant.Category)))
	return nil
}

// GetByID implements store.PlantStore.GetByID
// Returns store.ErrPlantNotFound if the plant does not exist.
func (s *PostgresPlantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, species, category, acquired_at, location, notes, created_at, updated_at
		FROM plants
		WHERE id = $1
	`

	plant, err := scanPlant(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("plant not found", slog.String("plant_id", id.String()))
			return nil, store.ErrPlantNotFound
		}
		log.Error("failed to get plant by ID",
			slog.String("error", err.Error()),
			slog.String("plant_id", id.String()))
		return nil, err
	}

	return plant, nil
}

// List implements store.PlantStore.List
// It retrieves plants ordered by creation time, newest first.
func (s *PostgresPlantStore) List(ctx context.Context, limit, offset int) ([]*domain.Plant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, name, species, category, acquired_at, location, notes, created_at, updated_at
		FROM plants
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list plants", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	plants := []*domain.Plant{}
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			log.Error("failed to scan plant row", slog.String("error", err.Error()))
			return nil, err
		}
		plants = append(plants, plant)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed plants", slog.Int("count", len(plants)))
	return plants, nil
}

// Count implements store.PlantStore.Count
func (s *PostgresPlantStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plants`).Scan(&count)
	if err != nil {
		log.Error("failed to count plants", slog.String("error", err.Error()))
		return 0, err
	}
	return count, nil
}

// Update implements store.PlantStore.Update
// Returns store.ErrPlantNotFound if the plant does not exist.
func (s *PostgresPlantStore) Update(ctx context.Context, plant *domain.Plant) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := plant.Validate(); err != nil {
		log.Warn("plant validation failed during update",
			slog.String("error", err.Error()),
			slog.String("plant_id", plant.ID.String()))
		return err
	}

	plant.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE plants
		SET name = $1, species = $2, category = $3, acquired_at = $4,
			location = $5, notes = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		plant.Name,
		plant.Species,
		plant.Category,
		plant.AcquiredAt,
		plant.Location,
		plant.Notes,
		plant.UpdatedAt,
		plant.ID,
	)
	if err != nil {
		log.Error("failed to update plant",
			slog.String("error", err.Error()),
			slog.String("plant_id", plant.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPlantNotFound); err != nil {
		log.Debug("plant not found for update", slog.String("plant_id", plant.ID.String()))
		return err
	}

	log.Info("plant updated successfully", slog.String("plant_id", plant.ID.String()))
	return nil
}

// Delete implements store.PlantStore.Delete
// Database cascades remove the plant's reminders, care events, and observations.
func (s *PostgresPlantStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete plant",
			slog.String("error", err.Error()),
			slog.String("plant_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPlantNotFound); err != nil {
		log.Debug("plant not found for delete", slog.String("plant_id", id.String()))
		return err
	}

	log.Info("plant deleted successfully", slog.String("plant_id", id.String()))
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (*domain.Plant, error) {
	var plant domain.Plant
	var category string

	err := row.Scan(
		&plant.ID,
		&plant.Name,
		&plant.Species,
		&category,
		&plant.AcquiredAt,
		&plant.Location,
		&plant.Notes,
		&plant.CreatedAt,
		&plant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	plant.Category = domain.PlantCategory(category)
	return &plant, nil
}
