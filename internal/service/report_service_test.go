package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"github.com/netgenix/printshop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *service.ReportService {
	return service.NewReportService(
		repository.NewReportRepository(db),
		repository.NewJobRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewSettingsRepository(db),
		service.BusinessDefaults{
			Name:            "NetGenix",
			Currency:        "ZMW",
			VATRate:         0.16,
			TurnoverTaxRate: 0.05,
		},
		testutil.NewLogger(),
	)
}

func today() string {
	return time.Now().UTC().Format(domain.DateFormat)
}

func TestReportService_Generate_Daily(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	testutil.CreateTestJob(t, db, "Client A", 400, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, "Client B", 200, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, "Client C", 999, domain.JobStatusPending)
	testutil.CreateTestExpense(t, db, "Ink", 150, testutil.Date(time.Now().Year(), time.Now().Month(), time.Now().Day()))

	report, data, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeDaily,
	})
	require.NoError(t, err)

	assert.Equal(t, today(), data.From)
	assert.Equal(t, today(), data.To)
	assert.Equal(t, "ZMW", data.Currency)
	assert.InDelta(t, 600.0, data.TotalRevenue, 1e-9)
	assert.InDelta(t, 150.0, data.TotalExpenses, 1e-9)
	assert.InDelta(t, 450.0, data.Profit, 1e-9)
	assert.Equal(t, 2, data.CompletedJobs)
	assert.InDelta(t, 600.0, data.PaymentsReceived, 1e-9)

	// Snapshot was persisted
	stored, err := svc.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportTypeDaily, stored.ReportType)
}

func TestReportService_Generate_WeeklyDefaultRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)

	_, data, err := svc.Generate(context.Background(), &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeWeekly,
	})
	require.NoError(t, err)

	to, err := time.Parse(domain.DateFormat, data.To)
	require.NoError(t, err)
	from, err := time.Parse(domain.DateFormat, data.From)
	require.NoError(t, err)
	assert.Equal(t, to.AddDate(0, 0, -6), from)
}

func TestReportService_Generate_MonthlyDefaultRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)

	_, data, err := svc.Generate(context.Background(), &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeMonthly,
		To:         "2026-08-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", data.From)
	assert.Equal(t, "2026-08-20", data.To)
}

func TestReportService_Generate_InvalidRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)

	_, _, err := svc.Generate(context.Background(), &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeMonthly,
		From:       "2026-08-20",
		To:         "2026-08-01",
	})
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)
}

func TestReportService_Generate_InvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)

	_, _, err := svc.Generate(context.Background(), &domain.GenerateReportRequest{
		ReportType: domain.ReportType("quarterly"),
	})
	assert.ErrorIs(t, err, service.ErrUnsupportedReportType)
}

func TestReportService_Generate_VAT(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	// Gross revenue of 116 at 16% inclusive VAT backs out to 100 net, 16 due
	testutil.CreateTestJob(t, db, "Client A", 116, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, "Client B", 58, domain.JobStatusCompleted)

	report, data, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeMonthlyVAT,
	})
	require.NoError(t, err)

	require.NotNil(t, data.VAT)
	assert.InDelta(t, 0.16, data.VAT.Rate, 1e-9)
	assert.InDelta(t, 174.0, data.VAT.GrossRevenue, 1e-9)
	assert.InDelta(t, 150.0, data.VAT.NetRevenue, 1e-9)
	assert.InDelta(t, 24.0, data.VAT.VATDue, 1e-9)
	assert.Nil(t, data.TurnoverTax)

	// Totals are the sums of the per-job lines
	require.Len(t, data.JobTaxLines, 2)
	var gross, net, tax float64
	for _, line := range data.JobTaxLines {
		gross += line.Gross
		net += line.Net
		tax += line.Tax
	}
	assert.InDelta(t, data.VAT.GrossRevenue, gross, 1e-9)
	assert.InDelta(t, data.VAT.NetRevenue, net, 1e-9)
	assert.InDelta(t, data.VAT.VATDue, tax, 1e-9)

	// The exported document carries the per-job breakdown
	result, err := svc.Export(ctx, report.ID, service.ExportFormatCSV)
	require.NoError(t, err)
	csv := string(result.Content)
	assert.Contains(t, csv, "Jobs Breakdown with VAT")
	assert.Contains(t, csv, "Client A")
	assert.Contains(t, csv, "ZMW 16.00")
}

func TestReportService_Generate_TurnoverTax(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	// 5% levied on gross: 100 gross leaves 5 due, 95 after tax
	testutil.CreateTestJob(t, db, "Client A", 100, domain.JobStatusCompleted)

	_, data, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeTurnoverTax,
	})
	require.NoError(t, err)

	require.NotNil(t, data.TurnoverTax)
	assert.InDelta(t, 100.0, data.TurnoverTax.GrossRevenue, 1e-9)
	assert.InDelta(t, 5.0, data.TurnoverTax.TaxDue, 1e-9)
	assert.InDelta(t, 95.0, data.TurnoverTax.NetAfterTax, 1e-9)
	assert.Nil(t, data.VAT)

	require.Len(t, data.JobTaxLines, 1)
	assert.Equal(t, "Client A", data.JobTaxLines[0].ClientName)
	assert.InDelta(t, 100.0, data.JobTaxLines[0].Gross, 1e-9)
	assert.InDelta(t, 5.0, data.JobTaxLines[0].Tax, 1e-9)
	assert.InDelta(t, 95.0, data.JobTaxLines[0].Net, 1e-9)
}

func TestReportService_Generate_RatesFromSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.BusinessSettings{
		ID:              1,
		BusinessName:    "NetGenix",
		Currency:        "ZMW",
		VATRate:         0.2,
		TurnoverTaxRate: 0.05,
	}).Error)

	testutil.CreateTestJob(t, db, "Client A", 120, domain.JobStatusCompleted)

	_, data, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeMonthlyVAT,
	})
	require.NoError(t, err)

	require.NotNil(t, data.VAT)
	assert.InDelta(t, 100.0, data.VAT.NetRevenue, 1e-9)
	assert.InDelta(t, 20.0, data.VAT.VATDue, 1e-9)
}

func TestReportService_Generate_JobTypeBreakdown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	testutil.CreateTestJob(t, db, "Client A", 400, domain.JobStatusCompleted)
	testutil.CreateTestJob(t, db, "Client B", 200, domain.JobStatusCompleted)

	_, data, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeDaily,
	})
	require.NoError(t, err)

	require.Len(t, data.JobTypes, 1)
	assert.Equal(t, "Banner Printing", data.JobTypes[0].JobType)
	assert.Equal(t, 2, data.JobTypes[0].Count)
	assert.InDelta(t, 600.0, data.JobTypes[0].Revenue, 1e-9)
}

func TestReportService_Generate_MaterialUsage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	reportSvc := newReportService(db)
	jobSvc := newJobService(db)
	ctx := context.Background()

	roll := testutil.CreateTestRoll(t, db, "VIN-300", 50) // cost 50/sqm, rate 150/sqm
	mode := domain.PaymentModeCash

	_, err := jobSvc.Create(ctx, &domain.CreateJobRequest{
		ClientName:      "Lusaka Signs",
		JobType:         "Banner Printing",
		MaterialRollID:  &roll.ID,
		JobWidth:        ptr(2.0),
		JobHeight:       ptr(1.0),
		JobQuantity:     ptr(1),
		Status:          domain.JobStatusCompleted,
		PaymentReceived: 300,
		PaymentMode:     &mode,
		ReceivedBy:      ptr("Grace"),
	}, uuid.New())
	require.NoError(t, err)

	_, data, err := reportSvc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeMaterialUsage,
	})
	require.NoError(t, err)

	require.Len(t, data.MaterialUsage, 1)
	line := data.MaterialUsage[0]
	assert.Equal(t, "VIN-300", line.RollCode)
	assert.Equal(t, 1, line.Jobs)
	assert.InDelta(t, 2.0, line.SqmUsed, 1e-9)
	assert.InDelta(t, 2.0/1.22, line.LengthDeducted, 1e-9)
	assert.InDelta(t, 100.0, line.CostConsumed, 1e-9)
	assert.InDelta(t, 300.0, line.Revenue, 1e-9)
	assert.InDelta(t, 200.0, line.Profit, 1e-9)
}

func TestReportService_Export(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	testutil.CreateTestJob(t, db, "Client A", 116, domain.JobStatusCompleted)

	report, _, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeMonthlyVAT,
	})
	require.NoError(t, err)

	cases := []struct {
		format      service.ExportFormat
		contentType string
		suffix      string
	}{
		{service.ExportFormatPDF, "application/pdf", ".pdf"},
		{service.ExportFormatExcel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"},
		{service.ExportFormatCSV, "text/csv", ".csv"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			result, err := svc.Export(ctx, report.ID, tc.format)
			require.NoError(t, err)
			assert.NotEmpty(t, result.Content)
			assert.Equal(t, tc.contentType, result.ContentType)
			assert.Contains(t, result.FileName, tc.suffix)
		})
	}
}

func TestReportService_Export_UnsupportedFormat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	report, _, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeDaily,
	})
	require.NoError(t, err)

	_, err = svc.Export(ctx, report.ID, service.ExportFormat("docx"))
	assert.ErrorIs(t, err, service.ErrUnsupportedExportFormat)
}

func TestReportService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	report, _, err := svc.Generate(ctx, &domain.GenerateReportRequest{
		ReportType: domain.ReportTypeDaily,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, report.ID))

	_, err = svc.GetByID(ctx, report.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
