package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	apiMiddleware "github.com/verdant/plantcare-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.MetricsMiddleware)

	plantHandler, reminderHandler, careEventHandler, observationHandler, dashboardHandler := app.handlers()

	r.Route("/api", func(r chi.Router) {
		// Plant collection
		r.Post("/plants", plantHandler.CreatePlant)
		r.Get("/plants", plantHandler.ListPlants)
		r.Get("/plants/{id}", plantHandler.GetPlant)
		r.Put("/plants/{id}", plantHandler.UpdatePlant)
		r.Delete("/plants/{id}", plantHandler.DeletePlant)
		r.Get("/plants/{id}/recommendations", plantHandler.GetRecommendation)

		// Per-plant reminders, care history, and health checks
		r.Get("/plants/{id}/reminders", reminderHandler.ListByPlant)
		r.Post("/plants/{id}/reminders/generate", reminderHandler.GenerateReminders)
		r.Post("/plants/{id}/care-events", careEventHandler.RecordEvent)
		r.Get("/plants/{id}/care-events", careEventHandler.History)
		r.Post("/plants/{id}/observations", observationHandler.RecordObservation)
		r.Get("/plants/{id}/observations", observationHandler.ListByPlant)
		r.Get("/plants/{id}/observations/latest", observationHandler.Latest)

		// Reminders
		r.Post("/reminders", reminderHandler.CreateReminder)
		r.Get("/reminders", reminderHandler.ListDue)
		r.Get("/reminders/{id}", reminderHandler.GetReminder)
		r.Put("/reminders/{id}", reminderHandler.UpdateReminder)
		r.Delete("/reminders/{id}", reminderHandler.DeleteReminder)
		r.Post("/reminders/{id}/complete", reminderHandler.CompleteReminder)

		// Individual care events and observations
		r.Get("/care-events/{id}", careEventHandler.GetEvent)
		r.Delete("/care-events/{id}", careEventHandler.DeleteEvent)
		r.Delete("/observations/{id}", observationHandler.DeleteObservation)

		// Collection overview
		r.Get("/dashboard", dashboardHandler.GetSummary)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
