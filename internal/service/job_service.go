package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JobService manages the job lifecycle. Job writes that touch roll inventory
// run inside a single database transaction so a failed deduction or
// restoration never leaves a half-written job behind.
type JobService struct {
	db          *gorm.DB
	jobRepo     *repository.JobRepository
	rollRepo    *repository.RollRepository
	rollService *RollService
	logger      *zap.Logger
}

func NewJobService(db *gorm.DB, jobRepo *repository.JobRepository, rollRepo *repository.RollRepository, rollService *RollService, logger *zap.Logger) *JobService {
	return &JobService{
		db:          db,
		jobRepo:     jobRepo,
		rollRepo:    rollRepo,
		rollService: rollService,
		logger:      logger,
	}
}

// validatePayment enforces the completion gate: a job may only carry the
// completed status once a positive payment, a payment mode and the receiving
// staff member are all recorded.
func validatePayment(status domain.JobStatus, payment float64, mode *domain.PaymentMode, receivedBy *string) error {
	if status != domain.JobStatusCompleted {
		return nil
	}
	if payment <= 0 || mode == nil {
		return ErrPaymentRequired
	}
	if receivedBy == nil || *receivedBy == "" {
		return ErrIdentityRequired
	}
	return nil
}

func paymentRecorded(payment float64, mode *domain.PaymentMode, receivedBy *string) bool {
	return payment > 0 && mode != nil && receivedBy != nil && *receivedBy != ""
}

// deriveStatus resolves the stored status from the payment fields. A fully
// recorded payment completes the job no matter what status the request
// carried; without one the requested status stands, defaulting to
// in_progress. An explicit completed without payment is rejected by
// validatePayment before this runs.
func deriveStatus(requested domain.JobStatus, payment float64, mode *domain.PaymentMode, receivedBy *string) domain.JobStatus {
	if paymentRecorded(payment, mode, receivedBy) {
		return domain.JobStatusCompleted
	}
	if requested == "" {
		return domain.JobStatusInProgress
	}
	return requested
}

func parseCompletionDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *JobService) Create(ctx context.Context, req *domain.CreateJobRequest, createdBy uuid.UUID) (*domain.Job, error) {
	if err := validatePayment(req.Status, req.PaymentReceived, req.PaymentMode, req.ReceivedBy); err != nil {
		return nil, err
	}
	status := deriveStatus(req.Status, req.PaymentReceived, req.PaymentMode, req.ReceivedBy)

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		return nil, err
	}
	if status == domain.JobStatusCompleted && completionDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		completionDate = &today
	}

	job := &domain.Job{
		ClientName:      req.ClientName,
		JobType:         req.JobType,
		MaterialsUsed:   req.MaterialsUsed,
		Cost:            req.Cost,
		Status:          status,
		CompletionDate:  completionDate,
		PaymentReceived: req.PaymentReceived,
		PaymentMode:     req.PaymentMode,
		ReceivedBy:      req.ReceivedBy,
		CreatedBy:       createdBy,
	}
	if req.PaymentReceived > 0 {
		now := time.Now().UTC()
		job.PaymentAt = &now
	}

	if req.MaterialRollID == nil {
		if err := s.jobRepo.Create(ctx, job); err != nil {
			return nil, err
		}
		s.logger.Info("job created",
			zap.String("job_id", job.ID.String()),
			zap.String("client", job.ClientName))
		return job, nil
	}

	if req.JobWidth == nil || req.JobHeight == nil || req.JobQuantity == nil {
		return nil, ErrInvalidDimensions
	}

	// Material-linked: price, deduct and persist atomically. The billing
	// figures come from the roll at creation time and never drift with later
	// roll edits.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rollRepo := s.rollRepo.WithTx(tx)
		jobRepo := s.jobRepo.WithTx(tx)

		roll, err := rollRepo.GetByID(ctx, *req.MaterialRollID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if roll.IsCompleted() {
			return ErrRollCompleted
		}

		rate := roll.SellingRatePerSqm
		if req.RatePerSqm != nil && *req.RatePerSqm > 0 {
			rate = *req.RatePerSqm
		}

		costing, err := ComputeCosting(*req.JobWidth, *req.JobHeight, *req.JobQuantity, roll.RollWidth, roll.CostPerSqm, rate)
		if err != nil {
			return err
		}

		if _, err := s.rollService.deductWith(ctx, rollRepo, roll.ID, costing.LengthDeducted); err != nil {
			return err
		}

		job.MaterialRollID = &roll.ID
		job.JobWidth = req.JobWidth
		job.JobHeight = req.JobHeight
		job.JobQuantity = req.JobQuantity
		job.SqmUsed = &costing.SqmUsed
		job.LengthDeducted = &costing.LengthDeducted
		job.RatePerSqm = &rate
		job.Cost = costing.AmountDue
		if job.MaterialsUsed == "" {
			job.MaterialsUsed = string(roll.MaterialType)
		}

		return jobRepo.Create(ctx, job)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("material job created",
		zap.String("job_id", job.ID.String()),
		zap.String("client", job.ClientName),
		zap.String("roll_id", req.MaterialRollID.String()),
		zap.Float64("length_deducted", *job.LengthDeducted))

	return s.GetByID(ctx, job.ID)
}

func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, page, pageSize int, filters *repository.JobFilters) ([]domain.Job, int64, error) {
	return s.jobRepo.List(ctx, page, pageSize, filters)
}

// Update edits job fields. Geometry and roll linkage are immutable after
// creation; only the descriptive, status and payment fields move.
func (s *JobService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validatePayment(req.Status, req.PaymentReceived, req.PaymentMode, req.ReceivedBy); err != nil {
		return nil, err
	}
	status := deriveStatus(req.Status, req.PaymentReceived, req.PaymentMode, req.ReceivedBy)

	completionDate, err := parseCompletionDate(req.CompletionDate)
	if err != nil {
		return nil, err
	}
	if status == domain.JobStatusCompleted && completionDate == nil {
		if job.CompletionDate != nil {
			completionDate = job.CompletionDate
		} else {
			today := time.Now().UTC().Truncate(24 * time.Hour)
			completionDate = &today
		}
	}

	if req.PaymentReceived > 0 && job.PaymentAt == nil {
		now := time.Now().UTC()
		job.PaymentAt = &now
	}

	job.ClientName = req.ClientName
	job.JobType = req.JobType
	job.MaterialsUsed = req.MaterialsUsed
	job.Status = status
	job.CompletionDate = completionDate
	job.PaymentReceived = req.PaymentReceived
	job.PaymentMode = req.PaymentMode
	job.ReceivedBy = req.ReceivedBy
	// Material-linked jobs keep their computed cost; manual jobs may be repriced.
	if !job.IsMaterialLinked() {
		job.Cost = req.Cost
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, job.ID)
}

// Delete removes a job and credits its recorded deduction back to the roll in
// the same transaction. A roll that was deleted in the meantime is skipped
// silently.
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	job, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rollRepo := s.rollRepo.WithTx(tx)
		jobRepo := s.jobRepo.WithTx(tx)

		if job.IsMaterialLinked() {
			amount := job.RestoreAmount()
			if amount > 0 {
				if err := rollRepo.RestoreRemaining(ctx, *job.MaterialRollID, amount); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}
		}

		return jobRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("job deleted", zap.String("job_id", id.String()))
	return nil
}

// ClearCompleted deletes all completed jobs and restores their recorded
// deductions, all in one transaction. Each roll is credited once with the sum
// of its jobs' deductions.
func (s *JobService) ClearCompleted(ctx context.Context) (*domain.ClearCompletedDTO, error) {
	var result domain.ClearCompletedDTO

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rollRepo := s.rollRepo.WithTx(tx)
		jobRepo := s.jobRepo.WithTx(tx)

		completed, err := jobRepo.ListCompleted(ctx)
		if err != nil {
			return err
		}

		restore := make(map[uuid.UUID]float64)
		for _, job := range completed {
			if job.IsMaterialLinked() {
				if amount := job.RestoreAmount(); amount > 0 {
					restore[*job.MaterialRollID] += amount
				}
			}
		}

		for rollID, amount := range restore {
			if err := rollRepo.RestoreRemaining(ctx, rollID, amount); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			result.RollsRestored++
		}

		deleted, err := jobRepo.DeleteCompleted(ctx)
		if err != nil {
			return err
		}
		result.JobsDeleted = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("completed jobs cleared",
		zap.Int64("jobs_deleted", result.JobsDeleted),
		zap.Int("rolls_restored", result.RollsRestored))

	return &result, nil
}
