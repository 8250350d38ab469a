package handler

import (
	"encoding/json"
	"errors"
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

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// List godoc
// @Summary List expenses
// @Description Get paginated list of expenses with optional filters
// @Tags Expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search by category or description"
// @Param category query string false "Filter by category"
// @Param from query string false "Expense date range start (yyyy-mm-dd)"
// @Param to query string false "Expense date range end (yyyy-mm-dd)"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ExpenseDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.ExpenseFilters{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
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

	expenses, total, err := h.expenseService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list expenses", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list expenses")
		return
	}

	respondJSON(w, http.StatusOK, paginated(mapper.ToExpenseDTOs(expenses), total, page, pageSize))
}

// GetByID godoc
// @Summary Get expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} domain.ExpenseDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Expense not found")
			return
		}
		h.logger.Error("failed to get expense", zap.Error(err), zap.String("expense_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get expense")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToExpenseDTO(expense))
}

// Create godoc
// @Summary Record expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body domain.CreateExpenseRequest true "Expense data"
// @Success 201 {object} domain.ExpenseDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateExpenseRequest
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

	expense, err := h.expenseService.Create(r.Context(), &req, userCtx.UserID)
	if err != nil {
		h.logger.Error("failed to create expense", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	respondJSON(w, http.StatusCreated, mapper.ToExpenseDTO(expense))
}

// Update godoc
// @Summary Update expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body domain.UpdateExpenseRequest true "Expense data"
// @Success 200 {object} domain.ExpenseDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	var req domain.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	expense, err := h.expenseService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Expense not found")
			return
		}
		h.logger.Error("failed to update expense", zap.Error(err), zap.String("expense_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to update expense")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToExpenseDTO(expense))
}

// Delete godoc
// @Summary Delete expense
// @Tags Expenses
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Expense not found")
			return
		}
		h.logger.Error("failed to delete expense", zap.Error(err), zap.String("expense_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
