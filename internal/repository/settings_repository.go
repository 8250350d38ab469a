package repository

import (
	"context"
	"errors"

	"github.com/netgenix/printshop-api/internal/domain"
	"gorm.io/gorm"
)

// SettingsRepository manages the single business_settings row.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row if one exists. Callers fall back to
// configuration defaults when gorm.ErrRecordNotFound is returned.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.BusinessSettings, error) {
	var settings domain.BusinessSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save upserts the settings row. At most one row exists; an update that
// finds no row creates it.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.BusinessSettings) error {
	var existing domain.BusinessSettings
	err := r.db.WithContext(ctx).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(settings).Error
		}
		return err
	}
	settings.ID = existing.ID
	return r.db.WithContext(ctx).Save(settings).Error
}
