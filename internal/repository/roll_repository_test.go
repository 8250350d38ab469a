package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRollRepository_DeductRemaining(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-001", 50)

	err := repo.DeductRemaining(ctx, roll.ID, 10)
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, updated.RemainingLength, 1e-9)
}

func TestRollRepository_DeductRemaining_ExactBoundary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-002", 10)

	// Deducting exactly the remaining length succeeds and leaves zero
	err := repo.DeductRemaining(ctx, roll.ID, 10)
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, updated.RemainingLength, 1e-9)
}

func TestRollRepository_DeductRemaining_Insufficient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-003", 5)

	err := repo.DeductRemaining(ctx, roll.ID, 5.01)
	assert.ErrorIs(t, err, repository.ErrInsufficientRemaining)

	// Nothing was written
	updated, err := repo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, updated.RemainingLength, 1e-9)
}

func TestRollRepository_DeductRemaining_MissingRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)

	err := repo.DeductRemaining(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRollRepository_DeductRemaining_CompletedRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-004", 20)
	changed, err := repo.MarkCompleted(ctx, roll.ID)
	require.NoError(t, err)
	require.True(t, changed)

	err = repo.DeductRemaining(ctx, roll.ID, 1)
	assert.ErrorIs(t, err, repository.ErrInsufficientRemaining)
}

func TestRollRepository_RestoreRemaining_Uncapped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-005", 50)

	// Restores are credits, not clamped to the initial length
	err := repo.RestoreRemaining(ctx, roll.ID, 10)
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, updated.RemainingLength, 1e-9)
}

func TestRollRepository_RestoreRemaining_MissingRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)

	err := repo.RestoreRemaining(context.Background(), uuid.New(), 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRollRepository_MarkCompleted_OneDirectional(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-006", 20)

	changed, err := repo.MarkCompleted(ctx, roll.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	// Second call finds no active row to transition
	changed, err = repo.MarkCompleted(ctx, roll.ID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRollRepository_ListLowStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	atLevel := testutil.CreateTestRoll(t, db, "LOW-001", 5) // alert level is 5 in fixtures
	below := testutil.CreateTestRoll(t, db, "LOW-002", 2)
	testutil.CreateTestRoll(t, db, "OK-001", 30)

	completed := testutil.CreateTestRoll(t, db, "LOW-003", 1)
	_, err := repo.MarkCompleted(ctx, completed.ID)
	require.NoError(t, err)

	rolls, err := repo.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, rolls, 2)

	codes := []string{rolls[0].RollCode, rolls[1].RollCode}
	assert.Contains(t, codes, atLevel.RollCode)
	assert.Contains(t, codes, below.RollCode)
}

func TestRollRepository_ListUsable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	usable := testutil.CreateTestRoll(t, db, "USE-001", 30)

	empty := testutil.CreateTestRoll(t, db, "USE-002", 10)
	require.NoError(t, repo.DeductRemaining(ctx, empty.ID, 10))

	completed := testutil.CreateTestRoll(t, db, "USE-003", 10)
	_, err := repo.MarkCompleted(ctx, completed.ID)
	require.NoError(t, err)

	rolls, err := repo.ListUsable(ctx)
	require.NoError(t, err)
	require.Len(t, rolls, 1)
	assert.Equal(t, usable.RollCode, rolls[0].RollCode)
}

func TestRollRepository_List_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewRollRepository(db)
	ctx := context.Background()

	testutil.CreateTestRoll(t, db, "BAN-010", 40)
	testutil.CreateTestRoll(t, db, "VIN-010", 40)

	rolls, total, err := repo.List(ctx, 1, 20, &repository.RollFilters{Search: "ban"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rolls, 1)
	assert.Equal(t, "BAN-010", rolls[0].RollCode)
}
