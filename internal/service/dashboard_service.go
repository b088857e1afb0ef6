package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/store"
)

// upcomingWindowDays is how far ahead the dashboard looks for upcoming care.
const upcomingWindowDays = 7

// DashboardSummary aggregates the state of the collection for the overview
// screen: how many plants there are and what care is due.
type DashboardSummary struct {
	PlantCount int                `json:"plant_count"`
	Overdue    []*domain.Reminder `json:"overdue"`
	DueToday   []*domain.Reminder `json:"due_today"`
	Upcoming   []*domain.Reminder `json:"upcoming"`
}

// DashboardService assembles the collection overview.
type DashboardService interface {
	// Summary returns the plant count and the overdue, due-today, and
	// upcoming reminders (next seven days).
	Summary(ctx context.Context) (*DashboardSummary, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	plantStore    store.PlantStore
	reminderStore store.ReminderStore
	logger        *slog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	plantStore store.PlantStore,
	reminderStore store.ReminderStore,
	logger *slog.Logger,
) (DashboardService, error) {
	if plantStore == nil {
		return nil, NewServiceError("dashboard", "new", "plantStore cannot be nil", domain.ErrValidation)
	}
	if reminderStore == nil {
		return nil, NewServiceError("dashboard", "new", "reminderStore cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &dashboardServiceImpl{
		plantStore:    plantStore,
		reminderStore: reminderStore,
		logger:        logger.With(slog.String("component", "dashboard_service")),
	}, nil
}

// Summary implements DashboardService.Summary
func (s *dashboardServiceImpl) Summary(ctx context.Context) (*DashboardSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	count, err := s.plantStore.Count(ctx)
	if err != nil {
		log.Error("failed to count plants", slog.String("error", err.Error()))
		return nil, NewServiceError("dashboard", "summary", "failed to count plants", err)
	}

	today := domain.DateOnly(time.Now().UTC())
	cutoff := today.AddDate(0, 0, upcomingWindowDays)

	due, err := s.reminderStore.FindDueBefore(ctx, cutoff)
	if err != nil {
		log.Error("failed to find due reminders", slog.String("error", err.Error()))
		return nil, NewServiceError("dashboard", "summary", "failed to find due reminders", err)
	}

	summary := &DashboardSummary{
		PlantCount: count,
		Overdue:    []*domain.Reminder{},
		DueToday:   []*domain.Reminder{},
		Upcoming:   []*domain.Reminder{},
	}
	for _, reminder := range due {
		switch {
		case reminder.DueDate.Before(today):
			summary.Overdue = append(summary.Overdue, reminder)
		case reminder.DueDate.Equal(today):
			summary.DueToday = append(summary.DueToday, reminder)
		default:
			summary.Upcoming = append(summary.Upcoming, reminder)
		}
	}

	log.Debug("dashboard summary assembled",
		slog.Int("plant_count", count),
		slog.Int("overdue", len(summary.Overdue)),
		slog.Int("due_today", len(summary.DueToday)),
		slog.Int("upcoming", len(summary.Upcoming)))
	return summary, nil
}
