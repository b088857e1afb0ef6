package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/domain/care"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// PlantService provides plant collection operations.
type PlantService interface {
	// CreatePlant adds a plant to the collection and generates its initial
	// care reminders in the same transaction.
	CreatePlant(ctx context.Context, name, species string, category domain.PlantCategory,
		acquiredAt time.Time, location, notes string) (*domain.Plant, error)

	// GetPlant retrieves a plant by ID.
	GetPlant(ctx context.Context, id uuid.UUID) (*domain.Plant, error)

	// ListPlants retrieves plants ordered by creation time, newest first.
	ListPlants(ctx context.Context, limit, offset int) ([]*domain.Plant, error)

	// UpdatePlant applies new details to an existing plant.
	UpdatePlant(ctx context.Context, id uuid.UUID, name, species string,
		category domain.PlantCategory, location, notes string) (*domain.Plant, error)

	// DeletePlant removes a plant and all of its dependent records.
	DeletePlant(ctx context.Context, id uuid.UUID) error
}

// plantServiceImpl implements the PlantService interface
type plantServiceImpl struct {
	db            *sql.DB
	plantStore    store.PlantStore
	reminderStore store.ReminderStore
	generator     *care.Generator
	seasons       SeasonResolver
	logger        *slog.Logger
}

// NewPlantService creates a new PlantService.
// It returns an error if any of the required dependencies are nil.
func NewPlantService(
	db *sql.DB,
	plantStore store.PlantStore,
	reminderStore store.ReminderStore,
	generator *care.Generator,
	seasons SeasonResolver,
	logger *slog.Logger,
) (PlantService, error) {
	if db == nil {
		return nil, NewServiceError("plant", "new", "db cannot be nil", domain.ErrValidation)
	}
	if plantStore == nil {
		return nil, NewServiceError("plant", "new", "plantStore cannot be nil", domain.ErrValidation)
	}
	if reminderStore == nil {
		return nil, NewServiceError("plant", "new", "reminderStore cannot be nil", domain.ErrValidation)
	}
	if generator == nil {
		return nil, NewServiceError("plant", "new", "generator cannot be nil", domain.ErrValidation)
	}
	if seasons == nil {
		seasons = CalendarSeasonResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &plantServiceImpl{
		db:            db,
		plantStore:    plantStore,
		reminderStore: reminderStore,
		generator:     generator,
		seasons:       seasons,
		logger:        logger.With(slog.String("component", "plant_service")),
	}, nil
}

// CreatePlant implements PlantService.CreatePlant
// The plant and its initial reminders are created atomically: a plant never
// enters the collection without a care schedule.
func (s *plantServiceImpl) CreatePlant(
	ctx context.Context,
	name, species string,
	category domain.PlantCategory,
	acquiredAt time.Time,
	location, notes string,
) (*domain.Plant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plant, err := domain.NewPlant(name, species, category, acquiredAt, location, notes)
	if err != nil {
		log.Warn("plant construction failed", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	season := s.seasons.Resolve(now)

	reminders, err := s.generator.GenerateForPlant(plant, nil, nil, season, now)
	if err != nil {
		log.Error("failed to generate initial reminders",
			slog.String("error", err.Error()),
			slog.String("plant_id", plant.ID.String()))
		return nil, NewServiceError("plant", "create", "failed to generate reminders", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlants := s.plantStore.WithTx(tx)
		txReminders := s.reminderStore.WithTx(tx)

		if err := txPlants.Create(ctx, plant); err != nil {
			return err
		}
		for _, reminder := range reminders {
			if err := txReminders.Create(ctx, reminder); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create plant in transaction",
			slog.String("error", err.Error()),
			slog.String("plant_id", plant.ID.String()))
		return nil, NewServiceError("plant", "create", "failed to save plant", err)
	}

	log.Info("plant created with initial reminders",
		slog.String("plant_id", plant.ID.String()),
		slog.String("category", string(plant.Category)),
		slog.String("season", string(season)),
		slog.Int("reminder_count", len(reminders)))
	return plant, nil
}

// GetPlant implements PlantService.GetPlant
func (s *plantServiceImpl) GetPlant(ctx context.Context, id uuid.UUID) (*domain.Plant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plant, err := s.plantStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrPlantNotFound
		}
		log.Error("failed to retrieve plant",
			slog.String("error", err.Error()),
			slog.String("plant_id", id.String()))
		return nil, NewServiceError("plant", "get", "failed to retrieve plant", err)
	}
	return plant, nil
}

// ListPlants implements PlantService.ListPlants
func (s *plantServiceImpl) ListPlants(ctx context.Context, limit, offset int) ([]*domain.Plant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plants, err := s.plantStore.List(ctx, limit, offset)
	if err != nil {
		log.Error("failed to list plants", slog.String("error", err.Error()))
		return nil, NewServiceError("plant", "list", "failed to list plants", err)
	}
	return plants, nil
}

// UpdatePlant implements PlantService.UpdatePlant
func (s *plantServiceImpl) UpdatePlant(
	ctx context.Context,
	id uuid.UUID,
	name, species string,
	category domain.PlantCategory,
	location, notes string,
) (*domain.Plant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plant, err := s.GetPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := plant.UpdateDetails(name, species, category, location, notes); err != nil {
		log.Warn("plant update rejected by domain",
			slog.String("error", err.Error()),
			slog.String("plant_id", id.String()))
		return nil, err
	}

	if err := s.plantStore.Update(ctx, plant); err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrPlantNotFound
		}
		log.Error("failed to update plant",
			slog.String("error", err.Error()),
			slog.String("plant_id", id.String()))
		return nil, NewServiceError("plant", "update", "failed to save plant", err)
	}

	return plant, nil
}

// DeletePlant implements PlantService.DeletePlant
// Dependent reminders, care events, and observations are removed by
// database cascades.
func (s *plantServiceImpl) DeletePlant(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.plantStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrPlantNotFound
		}
		log.Error("failed to delete plant",
			slog.String("error", err.Error()),
			slog.String("plant_id", id.String()))
		return NewServiceError("plant", "delete", "failed to delete plant", err)
	}

	log.Info("plant deleted", slog.String("plant_id", id.String()))
	return nil
}
