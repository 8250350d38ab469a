package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/mapper"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Generate godoc
// @Summary Generate report
// @Description Run an aggregation over completed jobs and expenses. The snapshot is persisted and the aggregated figures returned.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body domain.GenerateReportRequest true "Report parameters"
// @Success 200 {object} service.ReportData
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	report, data, err := h.reportService.Generate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateRange):
			respondWithError(w, http.StatusBadRequest, "Range start must not be after range end")
		case errors.Is(err, service.ErrUnsupportedReportType):
			respondWithError(w, http.StatusBadRequest, "Unsupported report type")
		default:
			h.logger.Error("failed to generate report", zap.Error(err), zap.String("report_type", string(req.ReportType)))
			respondWithError(w, http.StatusInternalServerError, "Failed to generate report")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"report": mapper.ToReportDTO(report),
		"data":   data,
	})
}

// List godoc
// @Summary List report snapshots
// @Description Get paginated report history with optional filters
// @Tags Reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param reportType query string false "Filter by report type" Enums(daily, weekly, monthly, monthly_vat, turnover_tax, material_usage)
// @Param from query string false "Report date range start (yyyy-mm-dd)"
// @Param to query string false "Report date range end (yyyy-mm-dd)"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ReportDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.ReportFilters{}
	if rt := r.URL.Query().Get("reportType"); rt != "" {
		t := domain.ReportType(rt)
		filters.ReportType = &t
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid 'from' date")
			return
		}
		filters.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid 'to' date")
			return
		}
		filters.To = &t
	}

	reports, total, err := h.reportService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list reports", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	respondJSON(w, http.StatusOK, paginated(mapper.ToReportDTOs(reports), total, page, pageSize))
}

// GetByID godoc
// @Summary Get report snapshot
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} domain.ReportDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.reportService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Report not found")
			return
		}
		h.logger.Error("failed to get report", zap.Error(err), zap.String("report_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get report")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToReportDTO(report))
}

// Delete godoc
// @Summary Delete report snapshot
// @Tags Reports
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.reportService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Report not found")
			return
		}
		h.logger.Error("failed to delete report", zap.Error(err), zap.String("report_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export godoc
// @Summary Export report snapshot
// @Description Download a persisted report as PDF, Excel or CSV
// @Tags Reports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param id path string true "Report ID"
// @Param format query string false "Export format" Enums(pdf, excel, csv) default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /reports/{id}/export [get]
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	format := service.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = service.ExportFormatPDF
	}

	result, err := h.reportService.Export(r.Context(), id, format)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Report not found")
		case errors.Is(err, service.ErrUnsupportedExportFormat):
			respondWithError(w, http.StatusBadRequest, "Unsupported export format")
		default:
			h.logger.Error("failed to export report", zap.Error(err), zap.String("report_id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to export report")
		}
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	_, _ = w.Write(result.Content)
}
