package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/mapper"
	"github.com/stretchr/testify/assert"
)

func TestToRollDTO(t *testing.T) {
	roll := &domain.MaterialRoll{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC),
		},
		RollCode:        "VIN-001",
		MaterialType:    domain.MaterialTypeVinyl,
		RollWidth:       1.22,
		InitialLength:   50,
		RemainingLength: 4,
		AlertLevel:      5,
		Status:          domain.RollStatusActive,
	}

	dto := mapper.ToRollDTO(roll)

	assert.Equal(t, "VIN-001", dto.RollCode)
	assert.InDelta(t, 1.22*4, dto.RemainingSqm, 1e-9)
	assert.True(t, dto.LowStock)
	assert.Equal(t, "2026-08-01T10:30:00Z", dto.CreatedAt)
}

func TestToJobDTO_RollCodeFromPreload(t *testing.T) {
	rollID := uuid.New()
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	job := &domain.Job{
		BaseModel:      domain.BaseModel{ID: uuid.New()},
		ClientName:     "Lusaka Signs",
		JobType:        "Banner Printing",
		Status:         domain.JobStatusCompleted,
		CompletionDate: &date,
		MaterialRollID: &rollID,
		MaterialRoll: &domain.MaterialRoll{
			BaseModel: domain.BaseModel{ID: rollID},
			RollCode:  "VIN-002",
		},
	}

	dto := mapper.ToJobDTO(job)

	assert.Equal(t, "VIN-002", dto.RollCode)
	assert.Equal(t, "2026-08-15", dto.CompletionDate)
}

func TestToJobDTO_DeletedRoll(t *testing.T) {
	job := &domain.Job{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		ClientName: "Lusaka Signs",
		JobType:    "Banner Printing",
		Status:     domain.JobStatusPending,
	}

	dto := mapper.ToJobDTO(job)

	assert.Empty(t, dto.RollCode)
	assert.Empty(t, dto.CompletionDate)
	assert.Nil(t, dto.MaterialRollID)
}

func TestToMaterialDTO_LowStock(t *testing.T) {
	material := &domain.Material{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      "White Thread",
		Quantity:  2,
		Unit:      "cones",
		Threshold: 10,
	}

	dto := mapper.ToMaterialDTO(material)
	assert.True(t, dto.LowStock)
}

func TestToProfileDTO(t *testing.T) {
	profile := &domain.Profile{
		ID:       uuid.New(),
		FullName: "Grace Mwansa",
	}

	dto := mapper.ToProfileDTO(profile, "grace@netgenix.co.zm", domain.RoleAdmin)

	assert.Equal(t, profile.ID, dto.ID)
	assert.Equal(t, "Grace Mwansa", dto.FullName)
	assert.Equal(t, "grace@netgenix.co.zm", dto.Email)
	assert.Equal(t, domain.RoleAdmin, dto.Role)
}
