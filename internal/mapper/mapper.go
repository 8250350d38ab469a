// Package mapper converts database models to their API shapes.
package mapper

import (
	"time"

	"github.com/netgenix/printshop-api/internal/domain"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateFormat)
}

// ToRollDTO converts a material roll
func ToRollDTO(roll *domain.MaterialRoll) domain.MaterialRollDTO {
	return domain.MaterialRollDTO{
		ID:                roll.ID,
		RollCode:          roll.RollCode,
		MaterialType:      roll.MaterialType,
		RollWidth:         roll.RollWidth,
		InitialLength:     roll.InitialLength,
		RemainingLength:   roll.RemainingLength,
		RemainingSqm:      roll.RemainingSqm(),
		CostPerSqm:        roll.CostPerSqm,
		SellingRatePerSqm: roll.SellingRatePerSqm,
		AlertLevel:        roll.AlertLevel,
		Status:            roll.Status,
		LowStock:          roll.IsLowStock(),
		CreatedAt:         formatTimestamp(roll.CreatedAt),
		UpdatedAt:         formatTimestamp(roll.UpdatedAt),
	}
}

// ToRollDTOs converts a slice of material rolls
func ToRollDTOs(rolls []domain.MaterialRoll) []domain.MaterialRollDTO {
	dtos := make([]domain.MaterialRollDTO, len(rolls))
	for i := range rolls {
		dtos[i] = ToRollDTO(&rolls[i])
	}
	return dtos
}

// ToJobDTO converts a job; the roll code is filled from the preloaded roll
// when present.
func ToJobDTO(job *domain.Job) domain.JobDTO {
	dto := domain.JobDTO{
		ID:              job.ID,
		ClientName:      job.ClientName,
		JobType:         job.JobType,
		MaterialsUsed:   job.MaterialsUsed,
		Cost:            job.Cost,
		Status:          job.Status,
		CompletionDate:  formatDate(job.CompletionDate),
		MaterialRollID:  job.MaterialRollID,
		JobWidth:        job.JobWidth,
		JobHeight:       job.JobHeight,
		JobQuantity:     job.JobQuantity,
		SqmUsed:         job.SqmUsed,
		LengthDeducted:  job.LengthDeducted,
		RatePerSqm:      job.RatePerSqm,
		PaymentReceived: job.PaymentReceived,
		PaymentMode:     job.PaymentMode,
		ReceivedBy:      job.ReceivedBy,
		PaymentAt:       job.PaymentAt,
		CreatedAt:       formatTimestamp(job.CreatedAt),
		UpdatedAt:       formatTimestamp(job.UpdatedAt),
	}
	if job.MaterialRoll != nil {
		dto.RollCode = job.MaterialRoll.RollCode
	}
	return dto
}

// ToJobDTOs converts a slice of jobs
func ToJobDTOs(jobs []domain.Job) []domain.JobDTO {
	dtos := make([]domain.JobDTO, len(jobs))
	for i := range jobs {
		dtos[i] = ToJobDTO(&jobs[i])
	}
	return dtos
}

// ToMaterialDTO converts a stock item
func ToMaterialDTO(material *domain.Material) domain.MaterialDTO {
	return domain.MaterialDTO{
		ID:          material.ID,
		Name:        material.Name,
		Quantity:    material.Quantity,
		Unit:        material.Unit,
		Threshold:   material.Threshold,
		CostPerUnit: material.CostPerUnit,
		LowStock:    material.IsLowStock(),
		CreatedAt:   formatTimestamp(material.CreatedAt),
		UpdatedAt:   formatTimestamp(material.UpdatedAt),
	}
}

// ToMaterialDTOs converts a slice of stock items
func ToMaterialDTOs(materials []domain.Material) []domain.MaterialDTO {
	dtos := make([]domain.MaterialDTO, len(materials))
	for i := range materials {
		dtos[i] = ToMaterialDTO(&materials[i])
	}
	return dtos
}

// ToExpenseDTO converts an expense
func ToExpenseDTO(expense *domain.Expense) domain.ExpenseDTO {
	return domain.ExpenseDTO{
		ID:          expense.ID,
		Category:    expense.Category,
		Amount:      expense.Amount,
		Description: expense.Description,
		ExpenseDate: expense.ExpenseDate.Format(domain.DateFormat),
		CreatedAt:   formatTimestamp(expense.CreatedAt),
		UpdatedAt:   formatTimestamp(expense.UpdatedAt),
	}
}

// ToExpenseDTOs converts a slice of expenses
func ToExpenseDTOs(expenses []domain.Expense) []domain.ExpenseDTO {
	dtos := make([]domain.ExpenseDTO, len(expenses))
	for i := range expenses {
		dtos[i] = ToExpenseDTO(&expenses[i])
	}
	return dtos
}

// ToReportDTO converts a report snapshot
func ToReportDTO(report *domain.Report) domain.ReportDTO {
	return domain.ReportDTO{
		ID:          report.ID,
		ReportType:  report.ReportType,
		ReportDate:  report.ReportDate.Format(domain.DateFormat),
		ReportData:  report.ReportData,
		GeneratedAt: report.GeneratedAt,
	}
}

// ToReportDTOs converts a slice of report snapshots
func ToReportDTOs(reports []domain.Report) []domain.ReportDTO {
	dtos := make([]domain.ReportDTO, len(reports))
	for i := range reports {
		dtos[i] = ToReportDTO(&reports[i])
	}
	return dtos
}

// ToSettingsDTO converts the business settings row
func ToSettingsDTO(settings *domain.BusinessSettings) domain.SettingsDTO {
	return domain.SettingsDTO{
		BusinessName:      settings.BusinessName,
		TPIN:              settings.TPIN,
		Currency:          settings.Currency,
		VATRate:           settings.VATRate,
		TurnoverTaxRate:   settings.TurnoverTaxRate,
		DefaultAlertLevel: settings.DefaultAlertLevel,
		UpdatedAt:         formatTimestamp(settings.UpdatedAt),
	}
}

// ToProfileDTO converts a profile, taking role and email from the token
// context since the profile table does not store them.
func ToProfileDTO(profile *domain.Profile, email string, role domain.UserRoleType) domain.ProfileDTO {
	return domain.ProfileDTO{
		ID:       profile.ID,
		FullName: profile.FullName,
		Email:    email,
		Role:     role,
	}
}
