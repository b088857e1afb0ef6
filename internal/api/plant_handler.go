// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/verdant/plantcare-api/internal/api/shared"
	"github.com/verdant/plantcare-api/internal/domain"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/service"
)

// PlantHandler handles plant-related HTTP requests.
type PlantHandler struct {
	plantService          service.PlantService
	recommendationService service.RecommendationService
	logger                *slog.Logger
}

// NewPlantHandler creates a new PlantHandler.
func NewPlantHandler(
	plantService service.PlantService,
	recommendationService service.RecommendationService,
	logger *slog.Logger,
) *PlantHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlantHandler")
	}

	return &PlantHandler{
		plantService:          plantService,
		recommendationService: recommendationService,
		logger:                logger.With(slog.String("component", "plant_handler")),
	}
}

// CreatePlant handles POST /plants requests.
func (h *PlantHandler) CreatePlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreatePlantRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	plant, err := h.plantService.CreatePlant(r.Context(), req.Name, req.Species,
		domain.PlantCategory(req.Category), req.AcquiredAt, req.Location, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("plant created",
		slog.String("plant_id", plant.ID.String()),
		slog.String("category", string(plant.Category)))
	shared.RespondWithJSON(w, r, http.StatusCreated, plant)
}

// GetPlant handles GET /plants/{id} requests.
func (h *PlantHandler) GetPlant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	plant, err := h.plantService.GetPlant(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plant)
}

// ListPlants handles GET /plants requests.
func (h *PlantHandler) ListPlants(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 50)

	plants, err := h.plantService.ListPlants(r.Context(), limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plants)
}

// UpdatePlant handles PUT /plants/{id} requests.
func (h *PlantHandler) UpdatePlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePlantRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	plant, err := h.plantService.UpdatePlant(r.Context(), id, req.Name, req.Species,
		domain.PlantCategory(req.Category), req.Location, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("plant updated", slog.String("plant_id", plant.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, plant)
}

// DeletePlant handles DELETE /plants/{id} requests. Reminders, care events,
// and observations for the plant are removed with it.
func (h *PlantHandler) DeletePlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.plantService.DeletePlant(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("plant deleted", slog.String("plant_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetRecommendation handles GET /plants/{id}/recommendations requests.
// It returns seasonal care advice from the plant's care strategy.
func (h *PlantHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	recommendation, err := h.recommendationService.ForPlant(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recommendation)
}
