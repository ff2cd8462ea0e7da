package handler

import (
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/service"
	"stockroom/internal/view"

	"github.com/rs/zerolog"
)

// DashboardHandler renders the home dashboard.
type DashboardHandler struct {
	service  service.DashboardService
	renderer *view.Renderer
	logger   zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, renderer *view.Renderer, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		renderer: renderer,
		logger:   logger.With().Str("handler", "dashboard").Logger(),
	}
}

// dashboardPage is the template data for the dashboard.
type dashboardPage struct {
	Stats *model.DashboardStats
	// MaxStock scales the stock chart bars.
	MaxStock int64
}

// Show handles GET /.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		renderInternalError(w, h.renderer, h.logger, err)
		return
	}

	var maxStock int64
	for _, cs := range stats.StockByCategory {
		if cs.TotalStock > maxStock {
			maxStock = cs.TotalStock
		}
	}

	render(w, h.renderer, h.logger, http.StatusOK, "dashboard", dashboardPage{
		Stats:    stats,
		MaxStock: maxStock,
	})
}
