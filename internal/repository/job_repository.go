package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *JobRepository) WithTx(tx *gorm.DB) *JobRepository {
	return &JobRepository{db: tx}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).Preload("MaterialRoll").Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Job{}, "id = ?", id).Error
}

// JobFilters narrows job listings
type JobFilters struct {
	Search string
	Status *domain.JobStatus
	From   *time.Time // completion_date range, inclusive
	To     *time.Time
}

func (r *JobRepository) List(ctx context.Context, page, pageSize int, filters *JobFilters) ([]domain.Job, int64, error) {
	var jobs []domain.Job
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Job{})

	if filters != nil {
		if filters.Search != "" {
			pattern := "%" + strings.ToLower(filters.Search) + "%"
			query = query.Where("LOWER(client_name) LIKE ? OR LOWER(job_type) LIKE ?", pattern, pattern)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.From != nil {
			query = query.Where("completion_date >= ?", *filters.From)
		}
		if filters.To != nil {
			query = query.Where("completion_date <= ?", *filters.To)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("MaterialRoll").
		Offset(offset).Limit(pageSize).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, total, err
}

// ListCompletedInRange returns completed jobs whose completion date falls in
// the inclusive range
func (r *JobRepository) ListCompletedInRange(ctx context.Context, from, to time.Time) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Preload("MaterialRoll").
		Where("status = ? AND completion_date >= ? AND completion_date <= ?",
			domain.JobStatusCompleted, from, to).
		Order("completion_date ASC").
		Find(&jobs).Error
	return jobs, err
}

// ListCompleted returns every completed job, newest completion first
func (r *JobRepository) ListCompleted(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.JobStatusCompleted).
		Order("completion_date DESC").
		Find(&jobs).Error
	return jobs, err
}

// DeleteCompleted bulk-deletes all completed jobs, returning how many rows
// went away
func (r *JobRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ?", domain.JobStatusCompleted).
		Delete(&domain.Job{})
	return result.RowsAffected, result.Error
}

// CountByStatus counts jobs in the given status
func (r *JobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountActive counts jobs not yet completed
func (r *JobRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("status <> ?", domain.JobStatusCompleted).Count(&count).Error
	return count, err
}

// SumCompletedCost totals the cost of all completed jobs
func (r *JobRepository) SumCompletedCost(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("status = ?", domain.JobStatusCompleted).
		Select("SUM(cost)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
