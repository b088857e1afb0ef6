package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// ObservationService provides plant health tracking operations.
type ObservationService interface {
	// RecordObservation appends a health observation for a plant.
	RecordObservation(ctx context.Context, plantID uuid.UUID, observedAt time.Time,
		status domain.HealthStatus, notes string) (*domain.HealthObservation, error)

	// ListByPlant retrieves a plant's observations, newest first.
	ListByPlant(ctx context.Context, plantID uuid.UUID, limit, offset int) ([]*domain.HealthObservation, error)

	// Latest retrieves a plant's most recent observation.
	Latest(ctx context.Context, plantID uuid.UUID) (*domain.HealthObservation, error)

	// DeleteObservation removes an observation.
	DeleteObservation(ctx context.Context, id uuid.UUID) error
}

// observationServiceImpl implements the ObservationService interface
type observationServiceImpl struct {
	observationStore store.ObservationStore
	logger           *slog.Logger
}

// NewObservationService creates a new ObservationService.
func NewObservationService(observationStore store.ObservationStore, logger *slog.Logger) (ObservationService, error) {
	if observationStore == nil {
		return nil, NewServiceError("observation", "new", "observationStore cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &observationServiceImpl{
		observationStore: observationStore,
		logger:           logger.With(slog.String("component", "observation_service")),
	}, nil
}

// RecordObservation implements ObservationService.RecordObservation
func (s *observationServiceImpl) RecordObservation(
	ctx context.Context,
	plantID uuid.UUID,
	observedAt time.Time,
	status domain.HealthStatus,
	notes string,
) (*domain.HealthObservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	obs, err := domain.NewHealthObservation(plantID, observedAt, status, notes)
	if err != nil {
		log.Warn("observation construction failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.observationStore.Create(ctx, obs); err != nil {
		log.Error("failed to record observation",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("observation", "record", "failed to save observation", err)
	}

	return obs, nil
}

// ListByPlant implements ObservationService.ListByPlant
func (s *observationServiceImpl) ListByPlant(
	ctx context.Context,
	plantID uuid.UUID,
	limit, offset int,
) ([]*domain.HealthObservation, error) {
	observations, err := s.observationStore.FindByPlant(ctx, plantID, limit, offset)
	if err != nil {
		return nil, NewServiceError("observation", "list", "failed to list observations", err)
	}
	return observations, nil
}

// Latest implements ObservationService.Latest
func (s *observationServiceImpl) Latest(ctx context.Context, plantID uuid.UUID) (*domain.HealthObservation, error) {
	obs, err := s.observationStore.Latest(ctx, plantID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrObservationNotFound
		}
		return nil, NewServiceError("observation", "latest", "failed to retrieve observation", err)
	}
	return obs, nil
}

// DeleteObservation implements ObservationService.DeleteObservation
func (s *observationServiceImpl) DeleteObservation(ctx context.Context, id uuid.UUID) error {
	if err := s.observationStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrObservationNotFound
		}
		return NewServiceError("observation", "delete", "failed to delete observation", err)
	}
	return nil
}
