package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"github.com/netgenix/printshop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *service.DashboardService {
	return service.NewDashboardService(
		repository.NewJobRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewRollRepository(db),
		repository.NewMaterialRepository(db),
		testutil.NewLogger(),
	)
}

func TestDashboardService_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	testutil.CreateTestJob(t, db, "Client A", 500, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, "Client B", 300, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, "Client C", 100, domain.JobStatusPending)
	testutil.CreateTestJob(t, db, "Client D", 200, domain.JobStatusInProgress)

	now := time.Now().UTC()
	testutil.CreateTestExpense(t, db, "Rent", 250, testutil.Date(now.Year(), now.Month(), now.Day()))

	testutil.CreateTestRoll(t, db, "LOW-100", 2) // below alert level 5

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 800.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 250.0, stats.TotalExpenses, 1e-9)
	assert.InDelta(t, 550.0, stats.Profit, 1e-9)
	assert.EqualValues(t, 2, stats.ActiveJobs)
	assert.EqualValues(t, 2, stats.CompletedJobs)
	assert.Equal(t, 1, stats.LowStockCount)
}

func TestDashboardService_LowStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	testutil.CreateTestRoll(t, db, "LOW-101", 3)
	testutil.CreateTestRoll(t, db, "OK-101", 40)

	require.NoError(t, db.Create(&domain.Material{
		Name:      "White Thread",
		Quantity:  2,
		Unit:      "cones",
		Threshold: 10,
	}).Error)
	require.NoError(t, db.Create(&domain.Material{
		Name:      "Black Ink",
		Quantity:  20,
		Unit:      "litres",
		Threshold: 5,
	}).Error)

	lowStock, err := svc.LowStock(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, lowStock.Count)
	kinds := map[string]string{}
	for _, item := range lowStock.Items {
		kinds[item.Kind] = item.Name
	}
	assert.Equal(t, "LOW-101", kinds["roll"])
	assert.Equal(t, "White Thread", kinds["material"])
}

func TestDashboardService_Performance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newDashboardService(db)
	ctx := context.Background()

	testutil.CreateTestJob(t, db, "Client A", 400, domain.JobStatusCompleted)

	now := time.Now().UTC()
	testutil.CreateTestExpense(t, db, "Ink", 100, testutil.Date(now.Year(), now.Month(), now.Day()))

	points, err := svc.Performance(ctx, 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	last := points[len(points)-1]
	assert.Equal(t, now.Format(domain.DateFormat), last.Date)
	assert.InDelta(t, 400.0, last.Revenue, 1e-9)
	assert.InDelta(t, 100.0, last.Expense, 1e-9)
	assert.InDelta(t, 300.0, last.Profit, 1e-9)

	// Earlier days are zero-filled
	assert.InDelta(t, 0.0, points[0].Revenue, 1e-9)
}

func TestDashboardService_Performance_DefaultWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newDashboardService(db)

	points, err := svc.Performance(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)
}
