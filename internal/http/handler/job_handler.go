package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/mapper"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"go.uber.org/zap"
)

type JobHandler struct {
	jobService *service.JobService
	logger     *zap.Logger
}

func NewJobHandler(jobService *service.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger,
	}
}

// List godoc
// @Summary List jobs
// @Description Get paginated list of jobs with optional filters
// @Tags Jobs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by client name or job type"
// @Param status query string false "Filter by status" Enums(pending, in_progress, completed)
// @Param from query string false "Completion date range start (yyyy-mm-dd)"
// @Param to query string false "Completion date range end (yyyy-mm-dd)"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.JobDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.JobFilters{
		Search: r.URL.Query().Get("search"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.JobStatus(status)
		filters.Status = &s
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

	jobs, total, err := h.jobService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	respondJSON(w, http.StatusOK, paginated(mapper.ToJobDTOs(jobs), total, page, pageSize))
}

// GetByID godoc
// @Summary Get job
// @Description Get a single job by ID
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} domain.JobDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("failed to get job", zap.Error(err), zap.String("job_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get job")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToJobDTO(job))
}

// Create godoc
// @Summary Create job
// @Description Create a job. With materialRollId set, the cost and roll deduction are computed server-side in one transaction.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body domain.CreateJobRequest true "Job data"
// @Success 201 {object} domain.JobDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	job, err := h.jobService.Create(r.Context(), &req, userCtx.UserID)
	if err != nil {
		h.respondJobError(w, err, "failed to create job")
		return
	}

	respondJSON(w, http.StatusCreated, mapper.ToJobDTO(job))
}

// Update godoc
// @Summary Update job
// @Description Update job fields. Moving to completed requires payment amount, mode and receiver.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param job body domain.UpdateJobRequest true "Job data"
// @Success 200 {object} domain.JobDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req domain.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	job, err := h.jobService.Update(r.Context(), id, &req)
	if err != nil {
		h.respondJobError(w, err, "failed to update job")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToJobDTO(job))
}

// Delete godoc
// @Summary Delete job
// @Description Delete a job and restore its recorded roll deduction
// @Tags Jobs
// @Param id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("failed to delete job", zap.Error(err), zap.String("job_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearCompleted godoc
// @Summary Clear completed jobs
// @Description Delete all completed jobs and restore their roll deductions in one transaction. Admin only.
// @Tags Jobs
// @Produce json
// @Success 200 {object} domain.ClearCompletedDTO
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /jobs/completed [delete]
func (h *JobHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ClearCompleted(r.Context())
	if err != nil {
		h.logger.Error("failed to clear completed jobs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to clear completed jobs")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondJobError maps the job service sentinels onto HTTP statuses
func (h *JobHandler) respondJobError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Record not found")
	case errors.Is(err, service.ErrPaymentRequired):
		respondWithError(w, http.StatusUnprocessableEntity, "Payment amount, mode and receiver are required to complete a job")
	case errors.Is(err, service.ErrIdentityRequired):
		respondWithError(w, http.StatusUnprocessableEntity, "Payment receiver is required")
	case errors.Is(err, service.ErrInsufficientMaterial):
		detail := "Not enough material remaining on the selected roll"
		var insufficient *service.InsufficientMaterialError
		if errors.As(err, &insufficient) {
			detail = fmt.Sprintf("Not enough material remaining on the selected roll. Required: %.2fm, Available: %.2fm",
				insufficient.RequiredLength, insufficient.AvailableLength)
		}
		respondWithError(w, http.StatusUnprocessableEntity, detail)
	case errors.Is(err, service.ErrRollCompleted):
		respondWithError(w, http.StatusUnprocessableEntity, "The selected roll is completed")
	case errors.Is(err, service.ErrInvalidDimensions):
		respondWithError(w, http.StatusBadRequest, "Width, height and quantity are required for material jobs")
	default:
		h.logger.Error(logMsg, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
