package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory SQLite database and migrates the
// full schema into it. Each call gets its own database, so tests can run in
// parallel without cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.Profile{},
		&domain.MaterialRoll{},
		&domain.Job{},
		&domain.Material{},
		&domain.Expense{},
		&domain.Report{},
		&domain.BusinessSettings{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	return db
}

// NewLogger returns a no-op zap logger for wiring services under test
func NewLogger() *zap.Logger {
	return zap.NewNop()
}

// CreateTestRoll inserts a roll with sensible defaults. Override fields on
// the returned value before use only via a fresh insert.
func CreateTestRoll(t *testing.T, db *gorm.DB, code string, remaining float64) *domain.MaterialRoll {
	t.Helper()

	roll := &domain.MaterialRoll{
		RollCode:          code,
		MaterialType:      domain.MaterialTypeVinyl,
		RollWidth:         1.22,
		InitialLength:     remaining,
		RemainingLength:   remaining,
		CostPerSqm:        50,
		SellingRatePerSqm: 150,
		AlertLevel:        5,
		Status:            domain.RollStatusActive,
	}
	require.NoError(t, db.Create(roll).Error)
	return roll
}

// CreateTestJob inserts a plain job without roll linkage
func CreateTestJob(t *testing.T, db *gorm.DB, client string, cost float64, status domain.JobStatus) *domain.Job {
	t.Helper()

	job := &domain.Job{
		ClientName:      client,
		JobType:         "Banner Printing",
		Cost:            cost,
		Status:          status,
		PaymentReceived: 0,
		CreatedBy:       uuid.New(),
	}
	if status == domain.JobStatusCompleted {
		mode := domain.PaymentModeCash
		receivedBy := "Test Staff"
		today := Date(time.Now().Year(), time.Now().Month(), time.Now().Day())
		job.PaymentReceived = cost
		job.PaymentMode = &mode
		job.ReceivedBy = &receivedBy
		job.CompletionDate = &today
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// CreateTestExpense inserts an expense on the given day
func CreateTestExpense(t *testing.T, db *gorm.DB, category string, amount float64, day time.Time) *domain.Expense {
	t.Helper()

	expense := &domain.Expense{
		Category:    category,
		Amount:      amount,
		Description: "test expense",
		ExpenseDate: day,
		CreatedBy:   uuid.New(),
	}
	require.NoError(t, db.Create(expense).Error)
	return expense
}

// Date builds a UTC midnight timestamp for calendar-day fields
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
