package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"gorm.io/gorm"
)

type RollRepository struct {
	db *gorm.DB
}

func NewRollRepository(db *gorm.DB) *RollRepository {
	return &RollRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *RollRepository) WithTx(tx *gorm.DB) *RollRepository {
	return &RollRepository{db: tx}
}

func (r *RollRepository) Create(ctx context.Context, roll *domain.MaterialRoll) error {
	return r.db.WithContext(ctx).Create(roll).Error
}

func (r *RollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaterialRoll, error) {
	var roll domain.MaterialRoll
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&roll).Error
	if err != nil {
		return nil, err
	}
	return &roll, nil
}

func (r *RollRepository) GetByCode(ctx context.Context, code string) (*domain.MaterialRoll, error) {
	var roll domain.MaterialRoll
	err := r.db.WithContext(ctx).Where("roll_code = ?", code).First(&roll).Error
	if err != nil {
		return nil, err
	}
	return &roll, nil
}

func (r *RollRepository) Update(ctx context.Context, roll *domain.MaterialRoll) error {
	return r.db.WithContext(ctx).Save(roll).Error
}

func (r *RollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.MaterialRoll{}, "id = ?", id).Error
}

// RollFilters narrows roll listings
type RollFilters struct {
	Search       string
	MaterialType *domain.MaterialType
	Status       *domain.RollStatus
}

func (r *RollRepository) List(ctx context.Context, page, pageSize int, filters *RollFilters) ([]domain.MaterialRoll, int64, error) {
	var rolls []domain.MaterialRoll
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.MaterialRoll{})

	if filters != nil {
		if filters.Search != "" {
			pattern := "%" + strings.ToLower(filters.Search) + "%"
			query = query.Where("LOWER(roll_code) LIKE ?", pattern)
		}
		if filters.MaterialType != nil {
			query = query.Where("material_type = ?", *filters.MaterialType)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&rolls).Error
	return rolls, total, err
}

// ListAll returns every roll, newest first
func (r *RollRepository) ListAll(ctx context.Context) ([]domain.MaterialRoll, error) {
	var rolls []domain.MaterialRoll
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rolls).Error
	return rolls, err
}

// ListUsable returns active rolls that still have material on them,
// for the job form roll picker
func (r *RollRepository) ListUsable(ctx context.Context) ([]domain.MaterialRoll, error) {
	var rolls []domain.MaterialRoll
	err := r.db.WithContext(ctx).
		Where("status = ? AND remaining_length > 0", domain.RollStatusActive).
		Order("roll_code ASC").
		Find(&rolls).Error
	return rolls, err
}

// ListLowStock returns active rolls at or below their alert level
func (r *RollRepository) ListLowStock(ctx context.Context) ([]domain.MaterialRoll, error) {
	var rolls []domain.MaterialRoll
	err := r.db.WithContext(ctx).
		Where("status = ? AND remaining_length <= alert_level", domain.RollStatusActive).
		Order("remaining_length ASC").
		Find(&rolls).Error
	return rolls, err
}

// DeductRemaining atomically deducts length from an active roll. The
// conditional update is the single point that prevents two concurrent jobs
// from over-drawing the same roll: both race to the same row, only the one
// the database applies first can satisfy remaining_length >= amount.
// Returns gorm.ErrRecordNotFound when the roll is missing, and
// ErrInsufficientRemaining when the deduction would over-draw (or the roll
// is completed).
func (r *RollRepository) DeductRemaining(ctx context.Context, id uuid.UUID, amount float64) error {
	result := r.db.WithContext(ctx).Model(&domain.MaterialRoll{}).
		Where("id = ? AND status = ? AND remaining_length >= ?", id, domain.RollStatusActive, amount).
		Update("remaining_length", gorm.Expr("remaining_length - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.MaterialRoll{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientRemaining
	}
	return nil
}

// RestoreRemaining credits length back to a roll. The credit is uncapped:
// remaining_length may end up above initial_length.
// Returns gorm.ErrRecordNotFound when the roll is missing.
func (r *RollRepository) RestoreRemaining(ctx context.Context, id uuid.UUID, amount float64) error {
	result := r.db.WithContext(ctx).Model(&domain.MaterialRoll{}).
		Where("id = ?", id).
		Update("remaining_length", gorm.Expr("remaining_length + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkCompleted transitions a roll to completed. One-directional; already
// completed rolls are left untouched and reported via RowsAffected.
func (r *RollRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.MaterialRoll{}).
		Where("id = ? AND status = ?", id, domain.RollStatusActive).
		Update("status", domain.RollStatusCompleted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RollRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.MaterialRoll{}).Count(&count).Error
	return count, err
}
