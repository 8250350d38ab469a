package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Delete removes a snapshot row. Snapshots are immutable but independently
// deletable.
func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Report{}, "id = ?", id).Error
}

// ReportFilters narrows report history listings
type ReportFilters struct {
	ReportType *domain.ReportType
	From       *time.Time // report_date range, inclusive
	To         *time.Time
}

func (r *ReportRepository) List(ctx context.Context, page, pageSize int, filters *ReportFilters) ([]domain.Report, int64, error) {
	var reports []domain.Report
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Report{})

	if filters != nil {
		if filters.ReportType != nil {
			query = query.Where("report_type = ?", *filters.ReportType)
		}
		if filters.From != nil {
			query = query.Where("report_date >= ?", *filters.From)
		}
		if filters.To != nil {
			query = query.Where("report_date <= ?", *filters.To)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("generated_at DESC").Find(&reports).Error
	return reports, total, err
}
