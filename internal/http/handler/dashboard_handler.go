package handler

import (
	"net/http"
	"strconv"

	"github.com/netgenix/printshop-api/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Get the headline figures: revenue, expenses, profit, job counts and low stock count
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStatsDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to get dashboard stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get dashboard stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Performance godoc
// @Summary Daily performance series
// @Description Get revenue, expense and profit per day over the trailing window
// @Tags Dashboard
// @Produce json
// @Param days query int false "Window size in days" default(7)
// @Success 200 {array} domain.PerformancePointDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /dashboard/performance [get]
func (h *DashboardHandler) Performance(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days < 1 || days > 90 {
		days = 7
	}

	points, err := h.dashboardService.Performance(r.Context(), days)
	if err != nil {
		h.logger.Error("failed to get performance series", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get performance series")
		return
	}

	respondJSON(w, http.StatusOK, points)
}

// LowStock godoc
// @Summary Low-stock alerts
// @Description Get every active roll at or below its alert level and every stock item below its threshold
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.LowStockDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.dashboardService.LowStock(r.Context())
	if err != nil {
		h.logger.Error("failed to get low stock alerts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get low stock alerts")
		return
	}

	respondJSON(w, http.StatusOK, alerts)
}
