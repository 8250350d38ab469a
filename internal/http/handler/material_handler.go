package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/mapper"
	"github.com/netgenix/printshop-api/internal/service"
	"go.uber.org/zap"
)

type MaterialHandler struct {
	materialService *service.MaterialService
	logger          *zap.Logger
}

func NewMaterialHandler(materialService *service.MaterialService, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
		logger:          logger,
	}
}

// List godoc
// @Summary List stock materials
// @Description Get paginated list of unit-counted stock items
// @Tags Materials
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by name"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.MaterialDTO}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /materials [get]
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	materials, total, err := h.materialService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"))
	if err != nil {
		h.logger.Error("failed to list materials", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list materials")
		return
	}

	respondJSON(w, http.StatusOK, paginated(mapper.ToMaterialDTOs(materials), total, page, pageSize))
}

// GetByID godoc
// @Summary Get stock material
// @Tags Materials
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} domain.MaterialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /materials/{id} [get]
func (h *MaterialHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material ID")
		return
	}

	material, err := h.materialService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Material not found")
			return
		}
		h.logger.Error("failed to get material", zap.Error(err), zap.String("material_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get material")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToMaterialDTO(material))
}

// Create godoc
// @Summary Create stock material
// @Tags Materials
// @Accept json
// @Produce json
// @Param material body domain.CreateMaterialRequest true "Material data"
// @Success 201 {object} domain.MaterialDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /materials [post]
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	material, err := h.materialService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create material", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create material")
		return
	}

	respondJSON(w, http.StatusCreated, mapper.ToMaterialDTO(material))
}

// Update godoc
// @Summary Update stock material
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param material body domain.UpdateMaterialRequest true "Material data"
// @Success 200 {object} domain.MaterialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material ID")
		return
	}

	var req domain.UpdateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	material, err := h.materialService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Material not found")
			return
		}
		h.logger.Error("failed to update material", zap.Error(err), zap.String("material_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to update material")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToMaterialDTO(material))
}

// Delete godoc
// @Summary Delete stock material
// @Tags Materials
// @Param id path string true "Material ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material ID")
		return
	}

	if err := h.materialService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Material not found")
			return
		}
		h.logger.Error("failed to delete material", zap.Error(err), zap.String("material_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete material")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
