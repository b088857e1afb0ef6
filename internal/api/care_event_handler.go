package api

import (
	"log/slog"
	"net/http"

	"github.com/verdant/plantcare-api/internal/api/shared"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/service"
)

// CareEventHandler handles care-history HTTP requests.
type CareEventHandler struct {
	careEventService service.CareEventService
	logger           *slog.Logger
}

// NewCareEventHandler creates a new CareEventHandler.
func NewCareEventHandler(careEventService service.CareEventService, logger *slog.Logger) *CareEventHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CareEventHandler")
	}

	return &CareEventHandler{
		careEventService: careEventService,
		logger:           logger.With(slog.String("component", "care_event_handler")),
	}
}

// RecordEvent handles POST /plants/{id}/care-events requests. It logs care
// that happened outside of any reminder, e.g. an unplanned watering.
func (h *CareEventHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req CreateCareEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	event, err := h.careEventService.RecordEvent(r.Context(), plantID,
		domain.ActionType(req.Type), req.OccurredAt, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("care event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("plant_id", event.PlantID.String()),
		slog.String("type", string(event.Type)))
	shared.RespondWithJSON(w, r, http.StatusCreated, event)
}

// GetEvent handles GET /care-events/{id} requests.
func (h *CareEventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	event, err := h.careEventService.GetEvent(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// History handles GET /plants/{id}/care-events requests, newest first.
func (h *CareEventHandler) History(w http.ResponseWriter, r *http.Request) {
	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	limit, offset := parsePagination(r, 50)

	events, err := h.careEventService.History(r.Context(), plantID, limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, events)
}

// DeleteEvent handles DELETE /care-events/{id} requests.
func (h *CareEventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.careEventService.DeleteEvent(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
