package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/verdant/plantcare-api/internal/api/middleware"
	"github.com/verdant/plantcare-api/internal/api/shared"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/service"
)

// ReminderHandler handles reminder-related HTTP requests.
type ReminderHandler struct {
	reminderService service.ReminderService
	logger          *slog.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, logger *slog.Logger) *ReminderHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReminderHandler")
	}

	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger.With(slog.String("component", "reminder_handler")),
	}
}

// CreateReminder handles POST /reminders requests.
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	reminder, err := h.reminderService.CreateReminder(r.Context(), req.PlantID,
		domain.ActionType(req.Type), req.Title, req.Description, req.DueDate, req.Recurrence)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("reminder created",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("plant_id", reminder.PlantID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, reminder)
}

// GetReminder handles GET /reminders/{id} requests.
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	reminder, err := h.reminderService.GetReminder(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminder)
}

// ListByPlant handles GET /plants/{id}/reminders requests.
// Passing ?active=true filters out completed reminders.
func (h *ReminderHandler) ListByPlant(w http.ResponseWriter, r *http.Request) {
	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	reminders, err := h.reminderService.ListByPlant(r.Context(), plantID, activeOnly)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminders)
}

// UpdateReminder handles PUT /reminders/{id} requests.
func (h *ReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	reminder, err := h.reminderService.UpdateReminder(r.Context(), id,
		req.Title, req.Description, req.DueDate, req.Recurrence)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminder)
}

// DeleteReminder handles DELETE /reminders/{id} requests.
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.reminderService.DeleteReminder(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteReminder handles POST /reminders/{id}/complete requests.
// The request body is optional; when present it may carry notes for the
// recorded care event.
func (h *ReminderHandler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req CompleteReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	reminder, err := h.reminderService.CompleteReminder(r.Context(), id, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	middleware.TrackReminderCompleted()
	log.Debug("reminder completed",
		slog.String("reminder_id", reminder.ID.String()),
		slog.Bool("reactivated", !reminder.IsCompleted))
	shared.RespondWithJSON(w, r, http.StatusOK, reminder)
}

// GenerateReminders handles POST /plants/{id}/reminders/generate requests.
// It fills in missing reminders from the plant's care strategy and returns
// the ones it created. Running it again is safe.
func (h *ReminderHandler) GenerateReminders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	created, err := h.reminderService.GenerateReminders(r.Context(), plantID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	middleware.TrackRemindersGenerated(len(created))
	log.Debug("reminders generated",
		slog.String("plant_id", plantID.String()),
		slog.Int("created", len(created)))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// ListDue handles GET /reminders requests. It returns active reminders due
// on or before the cutoff; the optional ?before query parameter (RFC 3339)
// moves the cutoff, which defaults to today.
func (h *ReminderHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	cutoff := domain.DateOnly(time.Now().UTC())
	if raw := r.URL.Query().Get("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Invalid before parameter, expected RFC 3339 timestamp")
			return
		}
		cutoff = parsed
	}

	reminders, err := h.reminderService.DueBefore(r.Context(), cutoff)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminders)
}
