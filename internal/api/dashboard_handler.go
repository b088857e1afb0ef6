package api

import (
	"log/slog"
	"net/http"

	"github.com/verdant/plantcare-api/internal/api/shared"
	"github.com/verdant/plantcare-api/internal/platform/logger"
	"github.com/verdant/plantcare-api/internal/service"
)

// DashboardHandler serves the collection-wide overview.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DashboardHandler")
	}

	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger.With(slog.String("component", "dashboard_handler")),
	}
}

// GetSummary handles GET /dashboard requests.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("dashboard summary served",
		slog.Int("plant_count", summary.PlantCount),
		slog.Int("overdue", len(summary.Overdue)))
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
