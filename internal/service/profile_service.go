package service

import (
	"context"
	"errors"
	"time"

	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileService keeps a local profile row per authenticated user so created
// rows can be attributed to a name rather than a bare token subject.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	logger      *zap.Logger
}

func NewProfileService(profileRepo *repository.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Ensure upserts a profile row from the token claims and returns it.
func (s *ProfileService) Ensure(ctx context.Context, user *auth.UserContext) (*domain.Profile, error) {
	profile := &domain.Profile{
		ID:        user.UserID,
		FullName:  user.DisplayName,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, user.UserID)
}

func (s *ProfileService) GetByID(ctx context.Context, user *auth.UserContext) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.Ensure(ctx, user)
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.List(ctx)
}
