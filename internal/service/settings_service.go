package service

import (
	"context"
	"errors"
	"time"

	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsService owns the single business settings row. Reads fall back to
// configured defaults until the first save.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	defaults     domain.BusinessSettings
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo *repository.SettingsRepository, defaults domain.BusinessSettings, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := s.defaults
			defaults.UpdatedAt = time.Now().UTC()
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.BusinessSettings, error) {
	settings := &domain.BusinessSettings{
		BusinessName:      req.BusinessName,
		TPIN:              req.TPIN,
		Currency:          req.Currency,
		VATRate:           req.VATRate,
		TurnoverTaxRate:   req.TurnoverTaxRate,
		DefaultAlertLevel: req.DefaultAlertLevel,
		UpdatedAt:         time.Now().UTC(),
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("business settings updated",
		zap.String("business_name", settings.BusinessName),
		zap.Float64("vat_rate", settings.VATRate),
		zap.Float64("turnover_tax_rate", settings.TurnoverTaxRate))

	return settings, nil
}
