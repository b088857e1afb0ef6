package api

import (
	"log/slog"
	"net/http"

	"github.com/verdant/plantcare-api/internal/api/shared"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/service"
)

// ObservationHandler handles plant health observation HTTP requests.
type ObservationHandler struct {
	observationService service.ObservationService
	logger             *slog.Logger
}

// NewObservationHandler creates a new ObservationHandler.
func NewObservationHandler(observationService service.ObservationService, logger *slog.Logger) *ObservationHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ObservationHandler")
	}

	return &ObservationHandler{
		observationService: observationService,
		logger:             logger.With(slog.String("component", "observation_handler")),
	}
}

// RecordObservation handles POST /plants/{id}/observations requests.
func (h *ObservationHandler) RecordObservation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req CreateObservationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	observation, err := h.observationService.RecordObservation(r.Context(), plantID,
		req.ObservedAt, domain.HealthStatus(req.Status), req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("observation recorded",
		slog.String("observation_id", observation.ID.String()),
		slog.String("status", string(observation.Status)))
	shared.RespondWithJSON(w, r, http.StatusCreated, observation)
}

// ListByPlant handles GET /plants/{id}/observations requests, newest first.
func (h *ObservationHandler) ListByPlant(w http.ResponseWriter, r *http.Request) {
	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	limit, offset := parsePagination(r, 50)

	observations, err := h.observationService.ListByPlant(r.Context(), plantID, limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, observations)
}

// Latest handles GET /plants/{id}/observations/latest requests.
func (h *ObservationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	plantID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	observation, err := h.observationService.Latest(r.Context(), plantID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, observation)
}

// DeleteObservation handles DELETE /observations/{id} requests.
func (h *ObservationHandler) DeleteObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.observationService.DeleteObservation(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
