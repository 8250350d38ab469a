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

// ExpenseService manages day-stamped business expenses.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) Create(ctx context.Context, req *domain.CreateExpenseRequest, createdBy uuid.UUID) (*domain.Expense, error) {
	expenseDate, err := time.Parse(domain.DateFormat, req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: expenseDate,
		CreatedBy:   createdBy,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", expense.Category),
		zap.Float64("amount", expense.Amount))

	return expense, nil
}

func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, page, pageSize int, filters *repository.ExpenseFilters) ([]domain.Expense, int64, error) {
	return s.expenseRepo.List(ctx, page, pageSize, filters)
}

func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expenseDate, err := time.Parse(domain.DateFormat, req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Description = req.Description
	expense.ExpenseDate = expenseDate

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
