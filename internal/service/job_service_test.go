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

func newJobService(db *gorm.DB) *service.JobService {
	jobRepo := repository.NewJobRepository(db)
	rollRepo := repository.NewRollRepository(db)
	rollService := newRollService(db)
	return service.NewJobService(db, jobRepo, rollRepo, rollService, testutil.NewLogger())
}

func ptr[T any](v T) *T { return &v }

func TestJobService_Create_PlainJob(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, domain.JobStatusInProgress, job.Status)
	assert.InDelta(t, 250.0, job.Cost, 1e-9)
	assert.Nil(t, job.MaterialRollID)
	assert.Nil(t, job.PaymentAt)

	// An explicit open status is kept as requested
	queued, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
		Status:     domain.JobStatusPending,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, queued.Status)
}

func TestJobService_Create_FullPaymentCompletesJob(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	mode := domain.PaymentModeCash
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:      "Kabwe Traders",
		JobType:         "Embroidery",
		Cost:            100,
		PaymentReceived: 100,
		PaymentMode:     &mode,
		ReceivedBy:      ptr("Grace"),
	}, uuid.New())
	require.NoError(t, err)

	// Status is derived from the payment fields, not taken from the request
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	require.NotNil(t, job.CompletionDate)
	require.NotNil(t, job.PaymentAt)
}

func TestJobService_Create_CompletedRequiresPayment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
		Status:     domain.JobStatusCompleted,
	}, uuid.New())
	assert.ErrorIs(t, err, service.ErrPaymentRequired)

	// Payment without a mode is still gated
	_, err = svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:      "Kabwe Traders",
		JobType:         "Embroidery",
		Cost:            250,
		Status:          domain.JobStatusCompleted,
		PaymentReceived: 250,
	}, uuid.New())
	assert.ErrorIs(t, err, service.ErrPaymentRequired)
}

func TestJobService_Create_CompletedRequiresReceiver(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	mode := domain.PaymentModeCash
	_, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:      "Kabwe Traders",
		JobType:         "Embroidery",
		Cost:            250,
		Status:          domain.JobStatusCompleted,
		PaymentReceived: 250,
		PaymentMode:     &mode,
	}, uuid.New())
	assert.ErrorIs(t, err, service.ErrIdentityRequired)
}

func TestJobService_Create_Completed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	mode := domain.PaymentModeMobileMoney
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:      "Kabwe Traders",
		JobType:         "Embroidery",
		Cost:            250,
		Status:          domain.JobStatusCompleted,
		PaymentReceived: 250,
		PaymentMode:     &mode,
		ReceivedBy:      ptr("Grace"),
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	require.NotNil(t, job.CompletionDate) // defaulted to today
	require.NotNil(t, job.PaymentAt)
}

func TestJobService_Create_MaterialJobDeductsRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-200", 50) // width 1.22, cost 50, rate 150

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(2.0),
		JobHeight:      ptr(1.0),
		JobQuantity:    ptr(1),
	}, uuid.New())
	require.NoError(t, err)

	// 2 sqm at K150, length 2/1.22
	assert.InDelta(t, 300.0, job.Cost, 1e-9)
	require.NotNil(t, job.SqmUsed)
	assert.InDelta(t, 2.0, *job.SqmUsed, 1e-9)
	require.NotNil(t, job.LengthDeducted)
	assert.InDelta(t, 2.0/1.22, *job.LengthDeducted, 1e-9)
	assert.Equal(t, string(domain.MaterialTypeVinyl), job.MaterialsUsed)

	rollRepo := repository.NewRollRepository(db)
	updated, err := rollRepo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0-2.0/1.22, updated.RemainingLength, 1e-9)
}

func TestJobService_Create_MaterialJobRequiresGeometry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-201", 50)

	_, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(2.0),
	}, uuid.New())
	assert.ErrorIs(t, err, service.ErrInvalidDimensions)
}

func TestJobService_Create_MaterialJobInsufficientRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-202", 1)

	_, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(2.0),
		JobHeight:      ptr(2.0),
		JobQuantity:    ptr(1),
	}, uuid.New())
	assert.ErrorIs(t, err, service.ErrInsufficientMaterial)

	// No job row was written
	var count int64
	require.NoError(t, db.Model(&domain.Job{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestJobService_Create_CompletedRollRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-203", 10)
	rollRepo := repository.NewRollRepository(db)
	_, err := rollRepo.MarkCompleted(ctx, roll.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(1.0),
		JobHeight:      ptr(1.0),
		JobQuantity:    ptr(1),
	}, uuid.New())
	assert.ErrorIs(t, err, service.ErrRollCompleted)
}

func TestJobService_Create_RateOverride(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-204", 50)

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(1.0),
		JobHeight:      ptr(1.0),
		JobQuantity:    ptr(1),
		RatePerSqm:     ptr(90.0),
	}, uuid.New())
	require.NoError(t, err)
	assert.InDelta(t, 90.0, job.Cost, 1e-9)
	require.NotNil(t, job.RatePerSqm)
	assert.InDelta(t, 90.0, *job.RatePerSqm, 1e-9)
}

func TestJobService_Update_MaterialJobKeepsComputedCost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-205", 50)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(1.0),
		JobHeight:      ptr(1.0),
		JobQuantity:    ptr(1),
	}, uuid.New())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, job.ID, &domain.UpdateJobRequest{
		ClientName: "Lusaka Signs Ltd",
		JobType:    "Banner Printing",
		Cost:       9999,
		Status:     domain.JobStatusInProgress,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lusaka Signs Ltd", updated.ClientName)
	assert.InDelta(t, 150.0, updated.Cost, 1e-9) // computed at creation, not repriced
}

func TestJobService_Update_ManualJobRepriced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
	}, uuid.New())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, job.ID, &domain.UpdateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       300,
		Status:     domain.JobStatusPending,
	})
	require.NoError(t, err)
	assert.InDelta(t, 300.0, updated.Cost, 1e-9)
}

func TestJobService_Update_CompletionGate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
	}, uuid.New())
	require.NoError(t, err)

	_, err = svc.Update(ctx, job.ID, &domain.UpdateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
		Status:     domain.JobStatusCompleted,
	})
	assert.ErrorIs(t, err, service.ErrPaymentRequired)

	mode := domain.PaymentModeCash
	updated, err := svc.Update(ctx, job.ID, &domain.UpdateJobRequest{
		ClientName:      "Kabwe Traders",
		JobType:         "Embroidery",
		Cost:            250,
		Status:          domain.JobStatusCompleted,
		PaymentReceived: 250,
		PaymentMode:     &mode,
		ReceivedBy:      ptr("Grace"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletionDate)
}

func TestJobService_Update_FullPaymentCompletesJob(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName: "Kabwe Traders",
		JobType:    "Embroidery",
		Cost:       250,
	}, uuid.New())
	require.NoError(t, err)

	mode := domain.PaymentModeMobileMoney
	updated, err := svc.Update(ctx, job.ID, &domain.UpdateJobRequest{
		ClientName:      "Kabwe Traders",
		JobType:         "Embroidery",
		Cost:            250,
		Status:          domain.JobStatusInProgress,
		PaymentReceived: 250,
		PaymentMode:     &mode,
		ReceivedBy:      ptr("Grace"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.JobStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletionDate)
	require.NotNil(t, updated.PaymentAt)
}

func TestJobService_Delete_RestoresRoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-206", 50)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(2.0),
		JobHeight:      ptr(1.0),
		JobQuantity:    ptr(1),
	}, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, job.ID))

	rollRepo := repository.NewRollRepository(db)
	updated, err := rollRepo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, updated.RemainingLength, 1e-9)

	_, err = svc.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestJobService_Delete_MissingRollSkipped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-207", 50)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		MaterialRollID: &roll.ID,
		JobWidth:       ptr(1.0),
		JobHeight:      ptr(1.0),
		JobQuantity:    ptr(1),
	}, uuid.New())
	require.NoError(t, err)

	rollService := newRollService(db)
	require.NoError(t, rollService.Delete(ctx, roll.ID))

	// Deleting the job succeeds even though there is no roll to credit
	require.NoError(t, svc.Delete(ctx, job.ID))
}

func TestJobService_ClearCompleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-208", 50)
	mode := domain.PaymentModeCash

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, &domain.CreateJobRequest{
			ClientName:      "Lusaka Signs",
			JobType:         "Banner Printing",
			MaterialRollID:  &roll.ID,
			JobWidth:        ptr(1.0),
			JobHeight:       ptr(1.0),
			JobQuantity:     ptr(1),
			Status:          domain.JobStatusCompleted,
			PaymentReceived: 150,
			PaymentMode:     &mode,
			ReceivedBy:      ptr("Grace"),
		}, uuid.New())
		require.NoError(t, err)
	}

	pending := testutil.CreateTestJob(t, db, "Still Working", 100, domain.JobStatusPending)

	result, err := svc.ClearCompleted(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.JobsDeleted)
	assert.Equal(t, 1, result.RollsRestored)

	rollRepo := repository.NewRollRepository(db)
	updated, err := rollRepo.GetByID(ctx, roll.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, updated.RemainingLength, 1e-9)

	// Pending jobs survive
	_, err = svc.GetByID(ctx, pending.ID)
	require.NoError(t, err)
}
