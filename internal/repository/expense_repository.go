package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Expense{}, "id = ?", id).Error
}

// ExpenseFilters narrows expense listings
type ExpenseFilters struct {
	Search   string
	Category string
	From     *time.Time // expense_date range, inclusive
	To       *time.Time
}

func (r *ExpenseRepository) List(ctx context.Context, page, pageSize int, filters *ExpenseFilters) ([]domain.Expense, int64, error) {
	var expenses []domain.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Expense{})

	if filters != nil {
		if filters.Search != "" {
			pattern := "%" + strings.ToLower(filters.Search) + "%"
			query = query.Where("LOWER(category) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		if filters.Category != "" {
			query = query.Where("category = ?", filters.Category)
		}
		if filters.From != nil {
			query = query.Where("expense_date >= ?", *filters.From)
		}
		if filters.To != nil {
			query = query.Where("expense_date <= ?", *filters.To)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("expense_date DESC").Find(&expenses).Error
	return expenses, total, err
}

// ListInRange returns expenses dated within the inclusive range
func (r *ExpenseRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	var expenses []domain.Expense
	err := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", from, to).
		Order("expense_date ASC").
		Find(&expenses).Error
	return expenses, err
}

// SumAll totals every recorded expense
func (r *ExpenseRepository) SumAll(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Expense{}).
		Select("SUM(amount)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
