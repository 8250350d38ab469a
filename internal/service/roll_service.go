package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/export"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RollService manages material roll inventory.
type RollService struct {
	rollRepo          *repository.RollRepository
	settingsRepo      *repository.SettingsRepository
	defaultAlertLevel float64
	logger            *zap.Logger
}

func NewRollService(rollRepo *repository.RollRepository, settingsRepo *repository.SettingsRepository, defaultAlertLevel float64, logger *zap.Logger) *RollService {
	return &RollService{
		rollRepo:          rollRepo,
		settingsRepo:      settingsRepo,
		defaultAlertLevel: defaultAlertLevel,
		logger:            logger,
	}
}

// alertLevelDefault resolves the alert level applied to rolls created without
// one: the stored business settings value, falling back to configuration.
func (s *RollService) alertLevelDefault(ctx context.Context) float64 {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return s.defaultAlertLevel
	}
	return settings.DefaultAlertLevel
}

func (s *RollService) Create(ctx context.Context, req *domain.CreateRollRequest, createdBy *uuid.UUID) (*domain.MaterialRoll, error) {
	code := strings.TrimSpace(req.RollCode)
	existing, err := s.rollRepo.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRollCode
	}

	rollWidth := req.RollWidth
	if rollWidth <= 0 {
		rollWidth = 1
	}
	alertLevel := s.alertLevelDefault(ctx)
	if req.AlertLevel != nil {
		alertLevel = *req.AlertLevel
	}

	roll := &domain.MaterialRoll{
		RollCode:          code,
		MaterialType:      req.MaterialType,
		RollWidth:         rollWidth,
		InitialLength:     req.InitialLength,
		RemainingLength:   req.InitialLength,
		CostPerSqm:        req.CostPerSqm,
		SellingRatePerSqm: req.SellingRatePerSqm,
		AlertLevel:        alertLevel,
		Status:            domain.RollStatusActive,
		CreatedBy:         createdBy,
	}

	if err := s.rollRepo.Create(ctx, roll); err != nil {
		return nil, err
	}

	s.logger.Info("material roll created",
		zap.String("roll_id", roll.ID.String()),
		zap.String("roll_code", roll.RollCode),
		zap.String("material_type", string(roll.MaterialType)))

	return roll, nil
}

func (s *RollService) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaterialRoll, error) {
	roll, err := s.rollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return roll, nil
}

func (s *RollService) List(ctx context.Context, page, pageSize int, filters *repository.RollFilters) ([]domain.MaterialRoll, int64, error) {
	return s.rollRepo.List(ctx, page, pageSize, filters)
}

// ListUsable returns active rolls with material left, for job-entry pickers.
func (s *RollService) ListUsable(ctx context.Context) ([]domain.MaterialRoll, error) {
	return s.rollRepo.ListUsable(ctx)
}

func (s *RollService) ListAll(ctx context.Context) ([]domain.MaterialRoll, error) {
	return s.rollRepo.ListAll(ctx)
}

// Update replaces roll metadata. Remaining length is never touched here; it
// only moves through deduction and restoration.
func (s *RollService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateRollRequest) (*domain.MaterialRoll, error) {
	roll, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roll.IsCompleted() {
		return nil, ErrRollCompleted
	}

	code := strings.TrimSpace(req.RollCode)
	if code != roll.RollCode {
		existing, err := s.rollRepo.GetByCode(ctx, code)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateRollCode
		}
	}

	roll.RollCode = code
	roll.MaterialType = req.MaterialType
	roll.RollWidth = req.RollWidth
	roll.InitialLength = req.InitialLength
	roll.CostPerSqm = req.CostPerSqm
	roll.SellingRatePerSqm = req.SellingRatePerSqm
	roll.AlertLevel = req.AlertLevel

	if err := s.rollRepo.Update(ctx, roll); err != nil {
		return nil, err
	}
	return roll, nil
}

// Delete removes a roll. Completed rolls are read-only and stay for history.
// Jobs referencing a deleted roll keep their stored costing figures; the
// foreign key is set null by the schema.
func (s *RollService) Delete(ctx context.Context, id uuid.UUID) error {
	roll, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if roll.IsCompleted() {
		return ErrRollCompleted
	}

	if err := s.rollRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("material roll deleted", zap.String("roll_id", id.String()))
	return nil
}

// Deduct atomically subtracts length from a roll and marks it completed when
// it runs dry. The conditional update in the repository guarantees the
// remaining length never goes negative, even under concurrent deductions.
func (s *RollService) Deduct(ctx context.Context, id uuid.UUID, amount float64) (*domain.MaterialRoll, error) {
	return s.deductWith(ctx, s.rollRepo, id, amount)
}

func (s *RollService) deductWith(ctx context.Context, repo *repository.RollRepository, id uuid.UUID, amount float64) (*domain.MaterialRoll, error) {
	if err := repo.DeductRemaining(ctx, id, amount); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrInsufficientRemaining):
			roll, lookupErr := repo.GetByID(ctx, id)
			if lookupErr != nil {
				return nil, ErrInsufficientMaterial
			}
			if roll.IsCompleted() {
				return nil, ErrRollCompleted
			}
			return nil, &InsufficientMaterialError{
				RequiredLength:  amount,
				AvailableLength: roll.RemainingLength,
			}
		default:
			return nil, err
		}
	}

	roll, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if roll.RemainingLength <= 0 && roll.Status == domain.RollStatusActive {
		if _, err := repo.MarkCompleted(ctx, id); err != nil {
			return nil, err
		}
		roll.Status = domain.RollStatusCompleted
		s.logger.Info("roll exhausted and marked completed",
			zap.String("roll_id", id.String()),
			zap.String("roll_code", roll.RollCode))
	}

	return roll, nil
}

// Restore adds length back to a roll, typically when a job is deleted. The
// restore is uncapped: remaining length may exceed the initial length if the
// roll was edited in between.
func (s *RollService) Restore(ctx context.Context, id uuid.UUID, amount float64) (*domain.MaterialRoll, error) {
	return s.restoreWith(ctx, s.rollRepo, id, amount)
}

func (s *RollService) restoreWith(ctx context.Context, repo *repository.RollRepository, id uuid.UUID, amount float64) (*domain.MaterialRoll, error) {
	if err := repo.RestoreRemaining(ctx, id, amount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return repo.GetByID(ctx, id)
}

// ExportExcel renders the full roll inventory as an XLSX workbook.
func (s *RollService) ExportExcel(ctx context.Context) (*ExportResult, error) {
	rolls, err := s.rollRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &export.Document{
		Title:       "Material Roll Inventory",
		PeriodLabel: now.Format(domain.DateFormat),
		GeneratedAt: now,
		Summary: []export.KV{
			{Label: "Rolls", Value: fmt.Sprintf("%d", len(rolls))},
		},
	}

	section := export.Section{
		Title:   "Rolls",
		Headers: []string{"Code", "Material", "Width (m)", "Initial (m)", "Remaining (m)", "Remaining SQM", "Cost/SQM", "Rate/SQM", "Alert Level", "Status"},
	}
	lowStock := 0
	for i := range rolls {
		roll := &rolls[i]
		if roll.IsLowStock() {
			lowStock++
		}
		section.Rows = append(section.Rows, []string{
			roll.RollCode,
			string(roll.MaterialType),
			fmt.Sprintf("%.2f", roll.RollWidth),
			fmt.Sprintf("%.2f", roll.InitialLength),
			fmt.Sprintf("%.2f", roll.RemainingLength),
			fmt.Sprintf("%.2f", roll.RemainingSqm()),
			fmt.Sprintf("%.2f", roll.CostPerSqm),
			fmt.Sprintf("%.2f", roll.SellingRatePerSqm),
			fmt.Sprintf("%.2f", roll.AlertLevel),
			string(roll.Status),
		})
	}
	doc.Summary = append(doc.Summary, export.KV{Label: "Low Stock", Value: fmt.Sprintf("%d", lowStock)})
	doc.Sections = append(doc.Sections, section)

	content, err := export.RenderExcel(doc)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName:    "roll-inventory-" + now.Format(domain.DateFormat) + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     content,
	}, nil
}

// Quote prices a job against a roll without touching inventory. A positive
// RatePerSqm in the request overrides the roll's selling rate.
func (s *RollService) Quote(ctx context.Context, req *domain.CostingRequest) (*domain.CostingDTO, error) {
	roll, err := s.GetByID(ctx, req.MaterialRollID)
	if err != nil {
		return nil, err
	}

	rate := roll.SellingRatePerSqm
	if req.RatePerSqm > 0 {
		rate = req.RatePerSqm
	}

	costing, err := ComputeCosting(req.Width, req.Height, req.Quantity, roll.RollWidth, roll.CostPerSqm, rate)
	if err != nil {
		return nil, err
	}

	return &domain.CostingDTO{
		SqmUsed:        costing.SqmUsed,
		AmountDue:      costing.AmountDue,
		LengthDeducted: costing.LengthDeducted,
		CostConsumed:   costing.CostConsumed,
		Sufficient:     roll.Status == domain.RollStatusActive && roll.RemainingLength >= costing.LengthDeducted,
		Available:      roll.RemainingLength,
	}, nil
}
