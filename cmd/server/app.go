package main

import (
	"database/sql"
	"log/slog"

	"github.com/verdant/plantcare-api/internal/api"
	"github.com/verdant/plantcare-api/internal/config"
	"github.com/verdant/plantcare-api/internal/domain/care"
	"github.com/verdant/plantcare-api/internal/platform/postgres"
	"github.com/verdant/plantcare-api/internal/service"
)

// application bundles the configured dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	plantService          service.PlantService
	reminderService       service.ReminderService
	careEventService      service.CareEventService
	observationService    service.ObservationService
	recommendationService service.RecommendationService
	dashboardService      service.DashboardService
}

// newApplication connects to the database, applies migrations, and wires the
// store and service layers together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		return nil, err
	}

	plantStore := postgres.NewPostgresPlantStore(db, logger)
	reminderStore := postgres.NewPostgresReminderStore(db, logger)
	careEventStore := postgres.NewPostgresCareEventStore(db, logger)
	observationStore := postgres.NewPostgresObservationStore(db, logger)

	registry := care.NewDefaultRegistry()
	generator, err := care.NewGenerator(registry)
	if err != nil {
		return nil, err
	}
	seasons := service.CalendarSeasonResolver()

	plantService, err := service.NewPlantService(db, plantStore, reminderStore, generator, seasons, logger)
	if err != nil {
		return nil, err
	}
	reminderService, err := service.NewReminderService(db, plantStore, reminderStore, careEventStore,
		generator, seasons, logger)
	if err != nil {
		return nil, err
	}
	careEventService, err := service.NewCareEventService(careEventStore, logger)
	if err != nil {
		return nil, err
	}
	observationService, err := service.NewObservationService(observationStore, logger)
	if err != nil {
		return nil, err
	}
	recommendationService, err := service.NewRecommendationService(plantStore, registry, seasons, logger)
	if err != nil {
		return nil, err
	}
	dashboardService, err := service.NewDashboardService(plantStore, reminderStore, logger)
	if err != nil {
		return nil, err
	}

	return &application{
		config:                cfg,
		logger:                logger,
		db:                    db,
		plantService:          plantService,
		reminderService:       reminderService,
		careEventService:      careEventService,
		observationService:    observationService,
		recommendationService: recommendationService,
		dashboardService:      dashboardService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}

// handlers creates the API handlers from the application's services.
func (app *application) handlers() (*api.PlantHandler, *api.ReminderHandler, *api.CareEventHandler, *api.ObservationHandler, *api.DashboardHandler) {
	return api.NewPlantHandler(app.plantService, app.recommendationService, app.logger),
		api.NewReminderHandler(app.reminderService, app.logger),
		api.NewCareEventHandler(app.careEventService, app.logger),
		api.NewObservationHandler(app.observationService, app.logger),
		api.NewDashboardHandler(app.dashboardService, app.logger)
}
