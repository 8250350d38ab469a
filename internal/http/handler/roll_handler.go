package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/mapper"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"go.uber.org/zap"
)

type RollHandler struct {
	rollService *service.RollService
	logger      *zap.Logger
}

func NewRollHandler(rollService *service.RollService, logger *zap.Logger) *RollHandler {
	return &RollHandler{
		rollService: rollService,
		logger:      logger,
	}
}

// List godoc
// @Summary List material rolls
// @Description Get paginated list of material rolls with optional filters
// @Tags Rolls
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by roll code"
// @Param materialType query string false "Filter by material type" Enums(Vinyl, PVC Banner, Banner Material, DTF)
// @Param status query string false "Filter by status" Enums(active, completed)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.MaterialRollDTO}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls [get]
func (h *RollHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.RollFilters{
		Search: r.URL.Query().Get("search"),
	}
	if mt := r.URL.Query().Get("materialType"); mt != "" {
		m := domain.MaterialType(mt)
		filters.MaterialType = &m
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.RollStatus(status)
		filters.Status = &s
	}

	rolls, total, err := h.rollService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list rolls", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list rolls")
		return
	}

	respondJSON(w, http.StatusOK, paginated(mapper.ToRollDTOs(rolls), total, page, pageSize))
}

// ListUsable godoc
// @Summary List usable rolls
// @Description Get all active rolls with material remaining, for job entry
// @Tags Rolls
// @Produce json
// @Success 200 {array} domain.MaterialRollDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls/usable [get]
func (h *RollHandler) ListUsable(w http.ResponseWriter, r *http.Request) {
	rolls, err := h.rollService.ListUsable(r.Context())
	if err != nil {
		h.logger.Error("failed to list usable rolls", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list usable rolls")
		return
	}
	respondJSON(w, http.StatusOK, mapper.ToRollDTOs(rolls))
}

// GetByID godoc
// @Summary Get material roll
// @Description Get a single material roll by ID
// @Tags Rolls
// @Produce json
// @Param id path string true "Roll ID"
// @Success 200 {object} domain.MaterialRollDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls/{id} [get]
func (h *RollHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid roll ID")
		return
	}

	roll, err := h.rollService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Roll not found")
			return
		}
		h.logger.Error("failed to get roll", zap.Error(err), zap.String("roll_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get roll")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToRollDTO(roll))
}

// Create godoc
// @Summary Create material roll
// @Description Register a new material roll; remaining length starts at the initial length
// @Tags Rolls
// @Accept json
// @Produce json
// @Param roll body domain.CreateRollRequest true "Roll data"
// @Success 201 {object} domain.MaterialRollDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls [post]
func (h *RollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	var createdBy *uuid.UUID
	if userCtx, ok := auth.FromContext(r.Context()); ok {
		createdBy = &userCtx.UserID
	}

	roll, err := h.rollService.Create(r.Context(), &req, createdBy)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRollCode) {
			respondWithError(w, http.StatusConflict, "A roll with this code already exists")
			return
		}
		h.logger.Error("failed to create roll", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create roll")
		return
	}

	respondJSON(w, http.StatusCreated, mapper.ToRollDTO(roll))
}

// Update godoc
// @Summary Update material roll
// @Description Update roll metadata; remaining length is not editable
// @Tags Rolls
// @Accept json
// @Produce json
// @Param id path string true "Roll ID"
// @Param roll body domain.UpdateRollRequest true "Roll data"
// @Success 200 {object} domain.MaterialRollDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls/{id} [put]
func (h *RollHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid roll ID")
		return
	}

	var req domain.UpdateRollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	roll, err := h.rollService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Roll not found")
		case errors.Is(err, service.ErrDuplicateRollCode):
			respondWithError(w, http.StatusConflict, "A roll with this code already exists")
		case errors.Is(err, service.ErrRollCompleted):
			respondWithError(w, http.StatusUnprocessableEntity, "Completed rolls are read-only")
		default:
			h.logger.Error("failed to update roll", zap.Error(err), zap.String("roll_id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to update roll")
		}
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToRollDTO(roll))
}

// Delete godoc
// @Summary Delete material roll
// @Description Delete a roll; jobs that used it keep their stored figures
// @Tags Rolls
// @Param id path string true "Roll ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls/{id} [delete]
func (h *RollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid roll ID")
		return
	}

	if err := h.rollService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Roll not found")
			return
		}
		if errors.Is(err, service.ErrRollCompleted) {
			respondWithError(w, http.StatusUnprocessableEntity, "Completed rolls are read-only")
			return
		}
		h.logger.Error("failed to delete roll", zap.Error(err), zap.String("roll_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete roll")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Quote godoc
// @Summary Quote a job against a roll
// @Description Compute billing and consumption figures without creating a job or touching inventory
// @Tags Rolls
// @Accept json
// @Produce json
// @Param costing body domain.CostingRequest true "Costing parameters"
// @Success 200 {object} domain.CostingDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls/quote [post]
func (h *RollHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req domain.CostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	quote, err := h.rollService.Quote(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Roll not found")
		case errors.Is(err, service.ErrInvalidDimensions):
			respondWithError(w, http.StatusBadRequest, "Width, height and quantity must be positive")
		default:
			h.logger.Error("failed to quote job", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to quote job")
		}
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// Export godoc
// @Summary Export rolls to Excel
// @Description Download the full roll inventory as an XLSX workbook
// @Tags Rolls
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /rolls/export [get]
func (h *RollHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.rollService.ExportExcel(r.Context())
	if err != nil {
		h.logger.Error("failed to export rolls", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to export rolls")
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	_, _ = w.Write(result.Content)
}
