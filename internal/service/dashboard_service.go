package service

import (
	"context"
	"time"

	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
)

// DashboardService assembles the headline figures, the daily performance
// series and the low-stock alert feed.
type DashboardService struct {
	jobRepo      *repository.JobRepository
	expenseRepo  *repository.ExpenseRepository
	rollRepo     *repository.RollRepository
	materialRepo *repository.MaterialRepository
	logger       *zap.Logger
}

func NewDashboardService(jobRepo *repository.JobRepository, expenseRepo *repository.ExpenseRepository, rollRepo *repository.RollRepository, materialRepo *repository.MaterialRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		jobRepo:      jobRepo,
		expenseRepo:  expenseRepo,
		rollRepo:     rollRepo,
		materialRepo: materialRepo,
		logger:       logger,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStatsDTO, error) {
	revenue, err := s.jobRepo.SumCompletedCost(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.jobRepo.CountByStatus(ctx, domain.JobStatusCompleted)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.LowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStatsDTO{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		Profit:        revenue - expenses,
		ActiveJobs:    active,
		CompletedJobs: completed,
		LowStockCount: lowStock.Count,
	}, nil
}

// Performance returns one point per day over the trailing window: revenue
// from jobs completed that day, expenses dated that day.
func (s *DashboardService) Performance(ctx context.Context, days int) ([]domain.PerformancePointDTO, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(days - 1))

	jobs, err := s.jobRepo.ListCompletedInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	revenueByDay := make(map[string]float64)
	for i := range jobs {
		if jobs[i].CompletionDate == nil {
			continue
		}
		revenueByDay[jobs[i].CompletionDate.Format(domain.DateFormat)] += jobs[i].Cost
	}
	expenseByDay := make(map[string]float64)
	for i := range expenses {
		expenseByDay[expenses[i].ExpenseDate.Format(domain.DateFormat)] += expenses[i].Amount
	}

	points := make([]domain.PerformancePointDTO, 0, days)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateFormat)
		revenue := revenueByDay[key]
		expense := expenseByDay[key]
		points = append(points, domain.PerformancePointDTO{
			Date:    key,
			Revenue: revenue,
			Expense: expense,
			Profit:  revenue - expense,
		})
	}
	return points, nil
}

// LowStock gathers every active roll at or below its alert level and every
// stock item strictly below its threshold.
func (s *DashboardService) LowStock(ctx context.Context) (*domain.LowStockDTO, error) {
	rolls, err := s.rollRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.LowStockItemDTO, 0, len(rolls)+len(materials))
	for i := range rolls {
		items = append(items, domain.LowStockItemDTO{
			ID:        rolls[i].ID,
			Kind:      "roll",
			Name:      rolls[i].RollCode,
			Remaining: rolls[i].RemainingLength,
			Threshold: rolls[i].AlertLevel,
			Unit:      "m",
		})
	}
	for i := range materials {
		items = append(items, domain.LowStockItemDTO{
			ID:        materials[i].ID,
			Kind:      "material",
			Name:      materials[i].Name,
			Remaining: materials[i].Quantity,
			Threshold: materials[i].Threshold,
			Unit:      materials[i].Unit,
		})
	}

	return &domain.LowStockDTO{Items: items, Count: len(items)}, nil
}
