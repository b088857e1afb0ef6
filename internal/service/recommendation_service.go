package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/domain/care"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// CareRecommendation is seasonal care advice derived from a plant's care
// strategy at the moment it is requested.
type CareRecommendation struct {
	PlantID         uuid.UUID     `json:"plant_id"`
	StrategyName    string        `json:"strategy_name"`
	Description     string        `json:"description"`
	Season          domain.Season `json:"season"`
	WateringDays    int           `json:"watering_days"`
	FertilizingDays int           `json:"fertilizing_days"`
	FertilizingNote string        `json:"fertilizing_note,omitempty"`
	Light           string        `json:"light"`
	Humidity        string        `json:"humidity"`
}

// RecommendationService derives seasonal care advice for plants.
type RecommendationService interface {
	// ForPlant resolves the plant's care strategy and returns advice for
	// the current season.
	ForPlant(ctx context.Context, plantID uuid.UUID) (*CareRecommendation, error)
}

// recommendationServiceImpl implements the RecommendationService interface
type recommendationServiceImpl struct {
	plantStore store.PlantStore
	registry   *care.Registry
	seasons    SeasonResolver
	logger     *slog.Logger
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(
	plantStore store.PlantStore,
	registry *care.Registry,
	seasons SeasonResolver,
	logger *slog.Logger,
) (RecommendationService, error) {
	if plantStore == nil {
		return nil, NewServiceError("recommendation", "new", "plantStore cannot be nil", domain.ErrValidation)
	}
	if registry == nil {
		return nil, NewServiceError("recommendation", "new", "registry cannot be nil", domain.ErrValidation)
	}
	if seasons == nil {
		seasons = CalendarSeasonResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &recommendationServiceImpl{
		plantStore: plantStore,
		registry:   registry,
		seasons:    seasons,
		logger:     logger.With(slog.String("component", "recommendation_service")),
	}, nil
}

// ForPlant implements RecommendationService.ForPlant
func (s *recommendationServiceImpl) ForPlant(ctx context.Context, plantID uuid.UUID) (*CareRecommendation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	plant, err := s.plantStore.GetByID(ctx, plantID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrPlantNotFound
		}
		log.Error("failed to retrieve plant for recommendation",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("recommendation", "for_plant", "failed to retrieve plant", err)
	}

	strategy, err := s.registry.ForPlant(plant)
	if err != nil {
		log.Error("no care strategy available",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()),
			slog.String("category", string(plant.Category)))
		return nil, NewServiceError("recommendation", "for_plant", "no care strategy available", err)
	}

	season := s.seasons.Resolve(time.Now().UTC())

	rec := &CareRecommendation{
		PlantID:         plant.ID,
		StrategyName:    strategy.Name(),
		Description:     strategy.Description(),
		Season:          season,
		WateringDays:    strategy.WateringDays(season),
		FertilizingDays: strategy.FertilizingDays(season),
		Light:           strategy.LightRecommendation(),
		Humidity:        strategy.HumidityRecommendation(),
	}
	if rec.FertilizingDays == 0 {
		rec.FertilizingNote = "Feeding pauses during dormancy; resume in spring."
	}

	return rec, nil
}
