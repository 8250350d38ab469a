package handler

import (
	"net/http"

	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/mapper"
	"github.com/netgenix/printshop-api/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewAuthHandler(profileService *service.ProfileService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Me godoc
// @Summary Current user
// @Description Get the authenticated user's profile, created on first request
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.ProfileDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.profileService.GetByID(r.Context(), userCtx)
	if err != nil {
		h.logger.Error("failed to get profile", zap.Error(err), zap.String("user_id", userCtx.UserID.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	respondJSON(w, http.StatusOK, mapper.ToProfileDTO(profile, userCtx.Email, userCtx.Role))
}
