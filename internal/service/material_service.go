package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaterialService manages unit-counted stock items.
type MaterialService struct {
	materialRepo *repository.MaterialRepository
	logger       *zap.Logger
}

func NewMaterialService(materialRepo *repository.MaterialRepository, logger *zap.Logger) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		logger:       logger,
	}
}

func (s *MaterialService) Create(ctx context.Context, req *domain.CreateMaterialRequest) (*domain.Material, error) {
	material := &domain.Material{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Threshold:   req.Threshold,
		CostPerUnit: req.CostPerUnit,
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	s.logger.Info("material created",
		zap.String("material_id", material.ID.String()),
		zap.String("name", material.Name))

	return material, nil
}

func (s *MaterialService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) List(ctx context.Context, page, pageSize int, search string) ([]domain.Material, int64, error) {
	return s.materialRepo.List(ctx, page, pageSize, search)
}

func (s *MaterialService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateMaterialRequest) (*domain.Material, error) {
	material, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	material.Name = req.Name
	material.Quantity = req.Quantity
	material.Unit = req.Unit
	material.Threshold = req.Threshold
	material.CostPerUnit = req.CostPerUnit

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, id)
}
