package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"github.com/netgenix/printshop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRollService(db *gorm.DB) *service.RollService {
	rollRepo := repository.NewRollRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	return service.NewRollService(rollRepo, settingsRepo, 5, testutil.NewLogger())
}

func TestRollService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll, err := svc.Create(ctx, &domain.CreateRollRequest{
		RollCode:          "  VIN-100  ",
		MaterialType:      domain.MaterialTypeVinyl,
		InitialLength:     50,
		CostPerSqm:        40,
		SellingRatePerSqm: 120,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "VIN-100", roll.RollCode)
	assert.InDelta(t, 50.0, roll.RemainingLength, 1e-9)
	assert.InDelta(t, 1.0, roll.RollWidth, 1e-9) // defaulted
	assert.InDelta(t, 5.0, roll.AlertLevel, 1e-9)
	assert.Equal(t, domain.RollStatusActive, roll.Status)
}

func TestRollService_Create_DuplicateCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	req := &domain.CreateRollRequest{
		RollCode:      "VIN-101",
		MaterialType:  domain.MaterialTypeVinyl,
		InitialLength: 50,
	}
	_, err := svc.Create(ctx, req, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req, nil)
	assert.ErrorIs(t, err, service.ErrDuplicateRollCode)
}

func TestRollService_Create_AlertLevelFromSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.BusinessSettings{
		ID:                1,
		BusinessName:      "NetGenix",
		Currency:          "ZMW",
		VATRate:           0.16,
		TurnoverTaxRate:   0.05,
		DefaultAlertLevel: 12,
	}).Error)

	roll, err := svc.Create(ctx, &domain.CreateRollRequest{
		RollCode:      "VIN-102",
		MaterialType:  domain.MaterialTypeVinyl,
		InitialLength: 50,
	}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, roll.AlertLevel, 1e-9)

	// An explicit value still wins
	explicit := 3.0
	roll2, err := svc.Create(ctx, &domain.CreateRollRequest{
		RollCode:      "VIN-103",
		MaterialType:  domain.MaterialTypeVinyl,
		InitialLength: 50,
		AlertLevel:    &explicit,
	}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, roll2.AlertLevel, 1e-9)
}

func TestRollService_Update_DoesNotTouchRemaining(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-104", 50)
	_, err := svc.Deduct(ctx, roll.ID, 20)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, roll.ID, &domain.UpdateRollRequest{
		RollCode:          "VIN-104",
		MaterialType:      domain.MaterialTypeDTF,
		RollWidth:         1.5,
		InitialLength:     60,
		CostPerSqm:        45,
		SellingRatePerSqm: 130,
		AlertLevel:        8,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MaterialTypeDTF, updated.MaterialType)
	assert.InDelta(t, 60.0, updated.InitialLength, 1e-9)
	assert.InDelta(t, 30.0, updated.RemainingLength, 1e-9)
}

func TestRollService_Update_CompletedRollReadOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-114", 10)
	_, err := svc.Deduct(ctx, roll.ID, 10)
	require.NoError(t, err)

	_, err = svc.Update(ctx, roll.ID, &domain.UpdateRollRequest{
		RollCode:      "VIN-114",
		MaterialType:  domain.MaterialTypeVinyl,
		RollWidth:     1.22,
		InitialLength: 10,
	})
	assert.ErrorIs(t, err, service.ErrRollCompleted)

	err = svc.Delete(ctx, roll.ID)
	assert.ErrorIs(t, err, service.ErrRollCompleted)
}

func TestRollService_Deduct_MarksExhaustedRollCompleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-105", 10)

	updated, err := svc.Deduct(ctx, roll.ID, 10)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, updated.RemainingLength, 1e-9)
	assert.Equal(t, domain.RollStatusCompleted, updated.Status)
}

func TestRollService_Deduct_CompletedRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-106", 10)
	_, err := svc.Deduct(ctx, roll.ID, 10)
	require.NoError(t, err)

	_, err = svc.Deduct(ctx, roll.ID, 1)
	assert.ErrorIs(t, err, service.ErrRollCompleted)
}

func TestRollService_Deduct_Insufficient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-107", 10)

	_, err := svc.Deduct(ctx, roll.ID, 11)
	assert.ErrorIs(t, err, service.ErrInsufficientMaterial)

	// The error names the figures for the rejection message
	var insufficient *service.InsufficientMaterialError
	require.ErrorAs(t, err, &insufficient)
	assert.InDelta(t, 11.0, insufficient.RequiredLength, 1e-9)
	assert.InDelta(t, 10.0, insufficient.AvailableLength, 1e-9)
}

func TestRollService_Deduct_MissingRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)

	_, err := svc.Deduct(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRollService_Restore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-108", 50)
	_, err := svc.Deduct(ctx, roll.ID, 20)
	require.NoError(t, err)

	restored, err := svc.Restore(ctx, roll.ID, 20)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, restored.RemainingLength, 1e-9)
}

func TestRollService_Quote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-109", 50) // width 1.22, rate 150, cost 50

	quote, err := svc.Quote(ctx, &domain.CostingRequest{
		MaterialRollID: roll.ID,
		Width:          1,
		Height:         2,
		Quantity:       1,
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, quote.SqmUsed, 1e-9)
	assert.InDelta(t, 300.0, quote.AmountDue, 1e-9)
	assert.InDelta(t, 2.0/1.22, quote.LengthDeducted, 1e-9)
	assert.True(t, quote.Sufficient)
	assert.InDelta(t, 50.0, quote.Available, 1e-9)

	// Nothing was deducted by quoting
	fresh, err := svc.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, fresh.RemainingLength, 1e-9)
}

func TestRollService_Quote_RateOverride(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-110", 50)

	quote, err := svc.Quote(ctx, &domain.CostingRequest{
		MaterialRollID: roll.ID,
		Width:          1,
		Height:         1,
		Quantity:       1,
		RatePerSqm:     200,
	})
	require.NoError(t, err)
	assert.InDelta(t, 200.0, quote.AmountDue, 1e-9)
}

func TestRollService_Quote_InsufficientFlagged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-111", 1)

	quote, err := svc.Quote(ctx, &domain.CostingRequest{
		MaterialRollID: roll.ID,
		Width:          2,
		Height:         2,
		Quantity:       1,
	})
	require.NoError(t, err)
	assert.False(t, quote.Sufficient)
}

func TestRollService_ExportExcel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newRollService(db)
	ctx := context.Background()

	testutil.CreateTestRoll(t, db, "VIN-112", 50)
	testutil.CreateTestRoll(t, db, "VIN-113", 2)

	result, err := svc.ExportExcel(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
	assert.Contains(t, result.FileName, "roll-inventory-")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.ContentType)
}
