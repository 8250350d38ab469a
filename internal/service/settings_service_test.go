package service_test

import (
	"context"
	"testing"

	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"github.com/netgenix/printshop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSettingsService(db *gorm.DB) *service.SettingsService {
	defaults := domain.BusinessSettings{
		ID:                1,
		BusinessName:      "NetGenix",
		Currency:          "ZMW",
		VATRate:           0.16,
		TurnoverTaxRate:   0.05,
		DefaultAlertLevel: 5,
	}
	return service.NewSettingsService(repository.NewSettingsRepository(db), defaults, testutil.NewLogger())
}

func TestSettingsService_Get_FallsBackToDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newSettingsService(db)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "NetGenix", settings.BusinessName)
	assert.Equal(t, "ZMW", settings.Currency)
	assert.InDelta(t, 0.16, settings.VATRate, 1e-9)
	assert.InDelta(t, 0.05, settings.TurnoverTaxRate, 1e-9)
}

func TestSettingsService_UpdateThenGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newSettingsService(db)
	ctx := context.Background()

	updated, err := svc.Update(ctx, &domain.UpdateSettingsRequest{
		BusinessName:      "NetGenix Prints",
		TPIN:              "1002003004",
		Currency:          "ZMW",
		VATRate:           0.16,
		TurnoverTaxRate:   0.04,
		DefaultAlertLevel: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "NetGenix Prints", updated.BusinessName)

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NetGenix Prints", settings.BusinessName)
	assert.Equal(t, "1002003004", settings.TPIN)
	assert.InDelta(t, 0.04, settings.TurnoverTaxRate, 1e-9)
	assert.InDelta(t, 8.0, settings.DefaultAlertLevel, 1e-9)
}

func TestSettingsService_Update_Overwrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newSettingsService(db)
	ctx := context.Background()

	_, err := svc.Update(ctx, &domain.UpdateSettingsRequest{
		BusinessName:      "First Name",
		Currency:          "ZMW",
		VATRate:           0.16,
		TurnoverTaxRate:   0.05,
		DefaultAlertLevel: 5,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &domain.UpdateSettingsRequest{
		BusinessName:      "Second Name",
		Currency:          "ZMW",
		VATRate:           0.16,
		TurnoverTaxRate:   0.05,
		DefaultAlertLevel: 5,
	})
	require.NoError(t, err)

	// Still a single row
	var count int64
	require.NoError(t, db.Model(&domain.BusinessSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second Name", settings.BusinessName)
}
