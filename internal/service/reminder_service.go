package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/domain/care"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// historyWindow bounds how much care history the generator considers when
// anchoring schedules. Only the latest event per action type matters, so a
// generous window is safe.
const historyWindow = 500

// ReminderService provides reminder lifecycle and generation operations.
type ReminderService interface {
	// CreateReminder adds a manually authored reminder for a plant.
	CreateReminder(ctx context.Context, plantID uuid.UUID, actionType domain.ActionType,
		title, description string, dueDate time.Time, recurrence *domain.RecurrenceRule) (*domain.Reminder, error)

	// GetReminder retrieves a reminder by ID.
	GetReminder(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)

	// ListByPlant retrieves a plant's reminders, optionally only active ones.
	ListByPlant(ctx context.Context, plantID uuid.UUID, activeOnly bool) ([]*domain.Reminder, error)

	// UpdateReminder replaces a reminder's editable fields.
	UpdateReminder(ctx context.Context, id uuid.UUID, title, description string,
		dueDate time.Time, recurrence *domain.RecurrenceRule) (*domain.Reminder, error)

	// DeleteReminder removes a reminder.
	DeleteReminder(ctx context.Context, id uuid.UUID) error

	// CompleteReminder marks a reminder done, appends the matching care
	// event, and reactivates the reminder with its next due date when the
	// recurrence series continues. All of it happens in one transaction.
	CompleteReminder(ctx context.Context, id uuid.UUID, notes string) (*domain.Reminder, error)

	// GenerateReminders creates missing reminders for a plant from its care
	// strategy. The operation is idempotent: action types that already have
	// an active reminder are left alone.
	GenerateReminders(ctx context.Context, plantID uuid.UUID) ([]*domain.Reminder, error)

	// DueBefore retrieves active reminders across all plants due on or
	// before the cutoff.
	DueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Reminder, error)
}

// reminderServiceImpl implements the ReminderService interface
type reminderServiceImpl struct {
	db             *sql.DB
	plantStore     store.PlantStore
	reminderStore  store.ReminderStore
	careEventStore store.CareEventStore
	generator      *care.Generator
	seasons        SeasonResolver
	logger         *slog.Logger
}

// NewReminderService creates a new ReminderService.
// It returns an error if any of the required dependencies are nil.
func NewReminderService(
	db *sql.DB,
	plantStore store.PlantStore,
	reminderStore store.ReminderStore,
	careEventStore store.CareEventStore,
	generator *care.Generator,
	seasons SeasonResolver,
	logger *slog.Logger,
) (ReminderService, error) {
	if db == nil {
		return nil, NewServiceError("reminder", "new", "db cannot be nil", domain.ErrValidation)
	}
	if plantStore == nil {
		return nil, NewServiceError("reminder", "new", "plantStore cannot be nil", domain.ErrValidation)
	}
	if reminderStore == nil {
		return nil, NewServiceError("reminder", "new", "reminderStore cannot be nil", domain.ErrValidation)
	}
	if careEventStore == nil {
		return nil, NewServiceError("reminder", "new", "careEventStore cannot be nil", domain.ErrValidation)
	}
	if generator == nil {
		return nil, NewServiceError("reminder", "new", "generator cannot be nil", domain.ErrValidation)
	}
	if seasons == nil {
		seasons = CalendarSeasonResolver()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reminderServiceImpl{
		db:             db,
		plantStore:     plantStore,
		reminderStore:  reminderStore,
		careEventStore: careEventStore,
		generator:      generator,
		seasons:        seasons,
		logger:         logger.With(slog.String("component", "reminder_service")),
	}, nil
}

// CreateReminder implements ReminderService.CreateReminder
func (s *reminderServiceImpl) CreateReminder(
	ctx context.Context,
	plantID uuid.UUID,
	actionType domain.ActionType,
	title, description string,
	dueDate time.Time,
	recurrence *domain.RecurrenceRule,
) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminder, err := domain.NewReminder(plantID, actionType, title, description, dueDate, recurrence)
	if err != nil {
		log.Warn("reminder construction failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.reminderStore.Create(ctx, reminder); err != nil {
		log.Error("failed to create reminder",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("reminder", "create", "failed to save reminder", err)
	}

	return reminder, nil
}

// GetReminder implements ReminderService.GetReminder
func (s *reminderServiceImpl) GetReminder(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminder, err := s.reminderStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrReminderNotFound
		}
		log.Error("failed to retrieve reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return nil, NewServiceError("reminder", "get", "failed to retrieve reminder", err)
	}
	return reminder, nil
}

// ListByPlant implements ReminderService.ListByPlant
func (s *reminderServiceImpl) ListByPlant(
	ctx context.Context,
	plantID uuid.UUID,
	activeOnly bool,
) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		reminders []*domain.Reminder
		err       error
	)
	if activeOnly {
		reminders, err = s.reminderStore.FindActiveByPlant(ctx, plantID)
	} else {
		reminders, err = s.reminderStore.FindByPlant(ctx, plantID)
	}
	if err != nil {
		log.Error("failed to list reminders",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("reminder", "list", "failed to list reminders", err)
	}
	return reminders, nil
}

// UpdateReminder implements ReminderService.UpdateReminder
func (s *reminderServiceImpl) UpdateReminder(
	ctx context.Context,
	id uuid.UUID,
	title, description string,
	dueDate time.Time,
	recurrence *domain.RecurrenceRule,
) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminder, err := s.GetReminder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := reminder.UpdateTitle(title); err != nil {
		return nil, err
	}
	reminder.UpdateDescription(description)
	if err := reminder.UpdateDueDate(dueDate); err != nil {
		return nil, err
	}
	if err := reminder.UpdateRecurrence(recurrence); err != nil {
		return nil, err
	}

	if err := s.reminderStore.Update(ctx, reminder); err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrReminderNotFound
		}
		log.Error("failed to update reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return nil, NewServiceError("reminder", "update", "failed to save reminder", err)
	}

	return reminder, nil
}

// DeleteReminder implements ReminderService.DeleteReminder
func (s *reminderServiceImpl) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.reminderStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrReminderNotFound
		}
		log.Error("failed to delete reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return NewServiceError("reminder", "delete", "failed to delete reminder", err)
	}
	return nil
}

// CompleteReminder implements ReminderService.CompleteReminder
// Completing a care reminder is the one place care history gets written from
// the reminder side, so the event append, the completion count, and the
// lifecycle transition run in a single transaction.
func (s *reminderServiceImpl) CompleteReminder(
	ctx context.Context,
	id uuid.UUID,
	notes string,
) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var completed *domain.Reminder
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txReminders := s.reminderStore.WithTx(tx)
		txEvents := s.careEventStore.WithTx(tx)

		reminder, err := txReminders.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return store.ErrReminderNotFound
			}
			return err
		}
		if reminder.IsCompleted {
			return ErrAlreadyCompleted
		}

		now := time.Now().UTC()
		priorCompletions := 0

		// Free-form reminder types leave no care history; everything else
		// records the completion as a care event. The series check wants the
		// completions already on record, so the count runs before the new
		// event is written.
		if reminder.Type.Actionable() {
			priorCompletions, err = txEvents.CountByPlantAndType(ctx, reminder.PlantID, reminder.Type)
			if err != nil {
				return err
			}
			event, err := domain.NewCareEvent(reminder.PlantID, reminder.Type, now, notes)
			if err != nil {
				return err
			}
			if err := txEvents.Create(ctx, event); err != nil {
				return err
			}
		}

		reminder.Complete(now, priorCompletions)

		if err := txReminders.Update(ctx, reminder); err != nil {
			return err
		}
		completed = reminder
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, ErrAlreadyCompleted) {
			return nil, err
		}
		log.Error("failed to complete reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return nil, NewServiceError("reminder", "complete", "failed to complete reminder", err)
	}

	log.Info("reminder completed",
		slog.String("reminder_id", id.String()),
		slog.Bool("reactivated", !completed.IsCompleted))
	return completed, nil
}

// GenerateReminders implements ReminderService.GenerateReminders
func (s *reminderServiceImpl) GenerateReminders(
	ctx context.Context,
	plantID uuid.UUID,
) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	season := s.seasons.Resolve(now)

	var generated []*domain.Reminder
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlants := s.plantStore.WithTx(tx)
		txReminders := s.reminderStore.WithTx(tx)
		txEvents := s.careEventStore.WithTx(tx)

		plant, err := txPlants.GetByID(ctx, plantID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return store.ErrPlantNotFound
			}
			return err
		}

		history, err := txEvents.FindByPlant(ctx, plantID, historyWindow, 0)
		if err != nil {
			return err
		}
		active, err := txReminders.FindActiveByPlant(ctx, plantID)
		if err != nil {
			return err
		}

		reminders, err := s.generator.GenerateForPlant(plant, history, active, season, now)
		if err != nil {
			return err
		}
		for _, reminder := range reminders {
			if err := txReminders.Create(ctx, reminder); err != nil {
				return err
			}
		}
		generated = reminders
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to generate reminders",
			slog.String("error", err.Error()),
			slog.String("plant_id", plantID.String()))
		return nil, NewServiceError("reminder", "generate", "failed to generate reminders", err)
	}

	log.Info("reminders generated",
		slog.String("plant_id", plantID.String()),
		slog.String("season", string(season)),
		slog.Int("count", len(generated)))
	return generated, nil
}

// DueBefore implements ReminderService.DueBefore
func (s *reminderServiceImpl) DueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminders, err := s.reminderStore.FindDueBefore(ctx, cutoff)
	if err != nil {
		log.Error("failed to find due reminders", slog.String("error", err.Error()))
		return nil, NewServiceError("reminder", "due_before", "failed to find due reminders", err)
	}
	return reminders, nil
}
