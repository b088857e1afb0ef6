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

// CareEventService provides care history operations for events recorded
// directly, outside the reminder completion flow.
type CareEventService interface {
	// RecordEvent appends a care event to a plant's history.
	RecordEvent(ctx context.Context, plantID uuid.UUID, actionType domain.ActionType,
		occurredAt time.Time, notes string) (*domain.CareEvent, error)

	// GetEvent retrieves a care event by ID.
	GetEvent(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error)

	// History retrieves a plant's care events, newest first.
	History(ctx context.Context, plantID uuid.UUID, limit, offset int) ([]*domain.CareEvent, error)

	// DeleteEvent removes a care event, e.g. one recorded by mistake.
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// careEventServiceImpl implements the CareEventService interface
type careEventServiceImpl struct {
	careEventStore store.CareEventStore
	logger         *slog.Logger
}

// NewCareEventService creates a new CareEventService.
func NewCareEventService(careEventStore store.CareEventStore, logger *slog.Logger) (CareEventService, error) {
	if careEventStore == nil {
		return nil, NewServiceError("care_event", "new", "careEventStore cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &careEventServiceImpl{
		careEventStore: careEventStore,
		logger:         logger.With(slog.String("component", "care_event_service")),
	}, nil
}

// RecordEvent implements CareEventService.RecordEvent
func (s *careEventServiceImpl) RecordEvent(
	ctx context.Context,
	plantID uuid.UUID,
	actionType domain.ActionType,
	occurredAt time.Time,
	notes string,
) (*domain.CareEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := domain.NewCareEvent(plantID, actionType, occurredAt, notes)
	if err != nil {
		log.Warn("care event construction failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.careEventStore.Create(ctx, event); err != nil {
		log.Error("failed to record care event",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("care_event", "record", "failed to save care event", err)
	}

	return event, nil
}

// GetEvent implements CareEventService.GetEvent
func (s *careEventServiceImpl) GetEvent(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error) {
	event, err := s.careEventStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrCareEventNotFound
		}
		return nil, NewServiceError("care_event", "get", "failed to retrieve care event", err)
	}
	return event, nil
}

// History implements CareEventService.History
func (s *careEventServiceImpl) History(
	ctx context.Context,
	plantID uuid.UUID,
	limit, offset int,
) ([]*domain.CareEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	events, err := s.careEventStore.FindByPlant(ctx, plantID, limit, offset)
	if err != nil {
		log.Error("failed to retrieve care history",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("care_event", "history", "failed to retrieve care history", err)
	}
	return events, nil
}

// DeleteEvent implements CareEventService.DeleteEvent
func (s *careEventServiceImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.careEventStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrCareEventNotFound
		}
		return NewServiceError("care_event", "delete", "failed to delete care event", err)
	}
	return nil
}
