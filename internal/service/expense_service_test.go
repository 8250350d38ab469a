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
)

func TestExpenseService_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewExpenseService(repository.NewExpenseRepository(db), testutil.NewLogger())
	ctx := context.Background()

	expense, err := svc.Create(ctx, &domain.CreateExpenseRequest{
		Category:    "Rent",
		Amount:      1500,
		Description: "August workshop rent",
		ExpenseDate: "2026-08-01",
	}, uuid.New())
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rent", fetched.Category)
	assert.InDelta(t, 1500.0, fetched.Amount, 1e-9)
	assert.Equal(t, "2026-08-01", fetched.ExpenseDate.Format(domain.DateFormat))
}

func TestExpenseService_Create_BadDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewExpenseService(repository.NewExpenseRepository(db), testutil.NewLogger())

	_, err := svc.Create(context.Background(), &domain.CreateExpenseRequest{
		Category:    "Rent",
		Amount:      1500,
		ExpenseDate: "01/08/2026",
	}, uuid.New())
	assert.Error(t, err)
}

func TestExpenseService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewExpenseService(repository.NewExpenseRepository(db), testutil.NewLogger())
	ctx := context.Background()

	expense, err := svc.Create(ctx, &domain.CreateExpenseRequest{
		Category:    "Ink",
		Amount:      300,
		ExpenseDate: "2026-08-10",
	}, uuid.New())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, expense.ID, &domain.UpdateExpenseRequest{
		Category:    "Consumables",
		Amount:      350,
		ExpenseDate: "2026-08-11",
	})
	require.NoError(t, err)
	assert.Equal(t, "Consumables", updated.Category)
	assert.InDelta(t, 350.0, updated.Amount, 1e-9)
}

func TestExpenseService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewExpenseService(repository.NewExpenseRepository(db), testutil.NewLogger())
	ctx := context.Background()

	expense, err := svc.Create(ctx, &domain.CreateExpenseRequest{
		Category:    "Transport",
		Amount:      80,
		ExpenseDate: "2026-08-12",
	}, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, expense.ID))

	_, err = svc.GetByID(ctx, expense.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestExpenseService_Delete_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewExpenseService(repository.NewExpenseRepository(db), testutil.NewLogger())

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMaterialService_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewMaterialService(repository.NewMaterialRepository(db), testutil.NewLogger())
	ctx := context.Background()

	material, err := svc.Create(ctx, &domain.CreateMaterialRequest{
		Name:        "White Thread",
		Quantity:    40,
		Unit:        "cones",
		Threshold:   10,
		CostPerUnit: 25,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, material.ID, &domain.UpdateMaterialRequest{
		Name:        "White Thread",
		Quantity:    8,
		Unit:        "cones",
		Threshold:   10,
		CostPerUnit: 25,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsLowStock())

	list, total, err := svc.List(ctx, 1, 20, "thread")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, material.ID))
	_, err = svc.GetByID(ctx, material.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
