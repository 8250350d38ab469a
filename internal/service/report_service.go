package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/export"
	"github.com/netgenix/printshop-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportData is the aggregated payload persisted as a report snapshot. The
// base figures are always present; the tax and usage sections only appear for
// the report types that carry them.
type ReportData struct {
	ReportType       domain.ReportType `json:"reportType"`
	From             string            `json:"from"`
	To               string            `json:"to"`
	Currency         string            `json:"currency"`
	TotalRevenue     float64           `json:"totalRevenue"`
	TotalExpenses    float64           `json:"totalExpenses"`
	Profit           float64           `json:"profit"`
	CompletedJobs    int               `json:"completedJobs"`
	PaymentsReceived float64           `json:"paymentsReceived"`
	JobTypes         []JobTypeLine     `json:"jobTypes,omitempty"`
	ExpenseLines     []ExpenseLine     `json:"expenseCategories,omitempty"`
	VAT              *VATLine          `json:"vat,omitempty"`
	TurnoverTax      *TurnoverTaxLine  `json:"turnoverTax,omitempty"`
	JobTaxLines      []JobTaxLine      `json:"jobTaxLines,omitempty"`
	MaterialUsage    []RollUsageLine   `json:"materialUsage,omitempty"`
}

// JobTypeLine is revenue grouped by job type
type JobTypeLine struct {
	JobType string  `json:"jobType"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ExpenseLine is spend grouped by expense category
type ExpenseLine struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// VATLine is the VAT-inclusive breakdown: revenue is treated as gross, the
// net is backed out at the configured rate.
type VATLine struct {
	Rate         float64 `json:"rate"`
	GrossRevenue float64 `json:"grossRevenue"`
	NetRevenue   float64 `json:"netRevenue"`
	VATDue       float64 `json:"vatDue"`
}

// TurnoverTaxLine is the turnover-tax breakdown: the tax is levied on gross
// revenue exclusively.
type TurnoverTaxLine struct {
	Rate         float64 `json:"rate"`
	GrossRevenue float64 `json:"grossRevenue"`
	TaxDue       float64 `json:"taxDue"`
	NetAfterTax  float64 `json:"netAfterTax"`
}

// JobTaxLine is the per-job tax split carried by the VAT and turnover-tax
// reports. VAT treats the job price as gross and backs the net out at the
// inclusive rate; turnover tax is levied on the gross price.
type JobTaxLine struct {
	ClientName string  `json:"clientName"`
	JobType    string  `json:"jobType"`
	Date       string  `json:"date,omitempty"`
	Gross      float64 `json:"gross"`
	Net        float64 `json:"net"`
	Tax        float64 `json:"tax"`
}

// RollUsageLine is consumption and yield per roll over the report range
type RollUsageLine struct {
	RollCode       string  `json:"rollCode"`
	MaterialType   string  `json:"materialType"`
	Jobs           int     `json:"jobs"`
	SqmUsed        float64 `json:"sqmUsed"`
	LengthDeducted float64 `json:"lengthDeducted"`
	CostConsumed   float64 `json:"costConsumed"`
	Revenue        float64 `json:"revenue"`
	Profit         float64 `json:"profit"`
}

// ReportService runs report aggregations and manages the snapshot history.
// Every report type runs through the same aggregator; the type only selects
// the default range and which sections the payload carries.
type ReportService struct {
	reportRepo   *repository.ReportRepository
	jobRepo      *repository.JobRepository
	expenseRepo  *repository.ExpenseRepository
	settingsRepo *repository.SettingsRepository
	business     BusinessDefaults
	logger       *zap.Logger
}

// BusinessDefaults carries the configured fallbacks used when no settings row
// exists yet.
type BusinessDefaults struct {
	Name            string
	Currency        string
	VATRate         float64
	TurnoverTaxRate float64
}

func NewReportService(reportRepo *repository.ReportRepository, jobRepo *repository.JobRepository, expenseRepo *repository.ExpenseRepository, settingsRepo *repository.SettingsRepository, business BusinessDefaults, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		jobRepo:      jobRepo,
		expenseRepo:  expenseRepo,
		settingsRepo: settingsRepo,
		business:     business,
		logger:       logger,
	}
}

func (s *ReportService) businessSettings(ctx context.Context) BusinessDefaults {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return s.business
	}
	return BusinessDefaults{
		Name:            settings.BusinessName,
		Currency:        settings.Currency,
		VATRate:         settings.VATRate,
		TurnoverTaxRate: settings.TurnoverTaxRate,
	}
}

// resolveRange turns a report request into an inclusive [from, to] day range.
// Explicit bounds win; otherwise the report type implies its own window
// ending today.
func resolveRange(reportType domain.ReportType, fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var from, to time.Time
	var err error

	if toStr != "" {
		to, err = time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return from, to, err
		}
	} else {
		to = today
	}

	if fromStr != "" {
		from, err = time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return from, to, err
		}
	} else {
		switch reportType {
		case domain.ReportTypeDaily:
			from = to
		case domain.ReportTypeWeekly:
			from = to.AddDate(0, 0, -6)
		default:
			// monthly, monthly_vat, turnover_tax and material_usage default
			// to the calendar month of the range end
			from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}

	if from.After(to) {
		return from, to, ErrInvalidDateRange
	}
	return from, to, nil
}

// Generate runs one aggregation and persists the result as a snapshot. A
// snapshot write failure is logged but does not fail the generation; the
// caller still gets the aggregated figures.
func (s *ReportService) Generate(ctx context.Context, req *domain.GenerateReportRequest) (*domain.Report, *ReportData, error) {
	if !req.ReportType.IsValid() {
		return nil, nil, ErrUnsupportedReportType
	}

	from, to, err := resolveRange(req.ReportType, req.From, req.To, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}

	data, err := s.aggregate(ctx, req.ReportType, from, to)
	if err != nil {
		return nil, nil, err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, nil, err
	}

	report := &domain.Report{
		ReportType:  req.ReportType,
		ReportDate:  to,
		ReportData:  domain.JSON(payload),
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		s.logger.Warn("report snapshot not persisted",
			zap.String("report_type", string(req.ReportType)),
			zap.Error(err))
	}

	s.logger.Info("report generated",
		zap.String("report_type", string(req.ReportType)),
		zap.String("from", data.From),
		zap.String("to", data.To),
		zap.Int("completed_jobs", data.CompletedJobs))

	return report, data, nil
}

func (s *ReportService) aggregate(ctx context.Context, reportType domain.ReportType, from, to time.Time) (*ReportData, error) {
	jobs, err := s.jobRepo.ListCompletedInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	business := s.businessSettings(ctx)

	data := &ReportData{
		ReportType: reportType,
		From:       from.Format(domain.DateFormat),
		To:         to.Format(domain.DateFormat),
		Currency:   business.Currency,
	}

	byType := make(map[string]*JobTypeLine)
	for i := range jobs {
		job := &jobs[i]
		data.TotalRevenue += job.Cost
		data.PaymentsReceived += job.PaymentReceived
		data.CompletedJobs++

		line, ok := byType[job.JobType]
		if !ok {
			line = &JobTypeLine{JobType: job.JobType}
			byType[job.JobType] = line
		}
		line.Count++
		line.Revenue += job.Cost
	}

	byCategory := make(map[string]float64)
	for i := range expenses {
		data.TotalExpenses += expenses[i].Amount
		byCategory[expenses[i].Category] += expenses[i].Amount
	}
	data.Profit = data.TotalRevenue - data.TotalExpenses

	for _, line := range byType {
		data.JobTypes = append(data.JobTypes, *line)
	}
	sort.Slice(data.JobTypes, func(i, j int) bool {
		return data.JobTypes[i].Revenue > data.JobTypes[j].Revenue
	})

	for category, amount := range byCategory {
		data.ExpenseLines = append(data.ExpenseLines, ExpenseLine{Category: category, Amount: amount})
	}
	sort.Slice(data.ExpenseLines, func(i, j int) bool {
		return data.ExpenseLines[i].Amount > data.ExpenseLines[j].Amount
	})

	switch reportType {
	case domain.ReportTypeMonthlyVAT:
		// Prices are VAT inclusive: net is backed out per job and the
		// totals are summed from the per-job lines.
		vat := &VATLine{Rate: business.VATRate}
		for i := range jobs {
			line := jobTaxLine(&jobs[i])
			line.Net = line.Gross / (1 + business.VATRate)
			line.Tax = line.Gross - line.Net
			data.JobTaxLines = append(data.JobTaxLines, line)
			vat.GrossRevenue += line.Gross
			vat.NetRevenue += line.Net
			vat.VATDue += line.Tax
		}
		data.VAT = vat
	case domain.ReportTypeTurnoverTax:
		tt := &TurnoverTaxLine{Rate: business.TurnoverTaxRate}
		for i := range jobs {
			line := jobTaxLine(&jobs[i])
			line.Tax = line.Gross * business.TurnoverTaxRate
			line.Net = line.Gross - line.Tax
			data.JobTaxLines = append(data.JobTaxLines, line)
			tt.GrossRevenue += line.Gross
			tt.TaxDue += line.Tax
			tt.NetAfterTax += line.Net
		}
		data.TurnoverTax = tt
	case domain.ReportTypeMaterialUsage:
		data.MaterialUsage = materialUsageLines(jobs)
	}

	return data, nil
}

func jobTaxLine(job *domain.Job) JobTaxLine {
	line := JobTaxLine{
		ClientName: job.ClientName,
		JobType:    job.JobType,
		Gross:      job.Cost,
	}
	if job.CompletionDate != nil {
		line.Date = job.CompletionDate.Format(domain.DateFormat)
	}
	return line
}

// materialUsageLines groups material-linked jobs by roll. Jobs whose roll has
// been deleted fall under a single "(deleted roll)" line keyed by nothing.
func materialUsageLines(jobs []domain.Job) []RollUsageLine {
	type key struct {
		id uuid.UUID
		ok bool
	}
	byRoll := make(map[key]*RollUsageLine)

	for i := range jobs {
		job := &jobs[i]
		if job.SqmUsed == nil && job.LengthDeducted == nil {
			continue
		}

		k := key{}
		if job.MaterialRollID != nil {
			k = key{id: *job.MaterialRollID, ok: true}
		}

		line, exists := byRoll[k]
		if !exists {
			line = &RollUsageLine{RollCode: "(deleted roll)"}
			if job.MaterialRoll != nil {
				line.RollCode = job.MaterialRoll.RollCode
				line.MaterialType = string(job.MaterialRoll.MaterialType)
			}
			byRoll[k] = line
		}

		line.Jobs++
		line.Revenue += job.Cost
		if job.SqmUsed != nil {
			line.SqmUsed += *job.SqmUsed
			if job.MaterialRoll != nil {
				line.CostConsumed += *job.SqmUsed * job.MaterialRoll.CostPerSqm
			}
		}
		if job.LengthDeducted != nil {
			line.LengthDeducted += *job.LengthDeducted
		}
		line.Profit = line.Revenue - line.CostConsumed
	}

	lines := make([]RollUsageLine, 0, len(byRoll))
	for _, line := range byRoll {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Revenue > lines[j].Revenue
	})
	return lines
}

func (s *ReportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

func (s *ReportService) List(ctx context.Context, page, pageSize int, filters *repository.ReportFilters) ([]domain.Report, int64, error) {
	return s.reportRepo.List(ctx, page, pageSize, filters)
}

func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.reportRepo.Delete(ctx, id)
}

// ExportFormat selects the rendered file type
type ExportFormat string

const (
	ExportFormatPDF   ExportFormat = "pdf"
	ExportFormatExcel ExportFormat = "excel"
	ExportFormatCSV   ExportFormat = "csv"
)

// ExportResult is a rendered report file
type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Export renders a persisted snapshot in the requested format.
func (s *ReportService) Export(ctx context.Context, id uuid.UUID, format ExportFormat) (*ExportResult, error) {
	report, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var data ReportData
	if err := json.Unmarshal([]byte(report.ReportData), &data); err != nil {
		return nil, fmt.Errorf("decode report data: %w", err)
	}

	business := s.businessSettings(ctx)
	doc := buildReportDocument(business.Name, report, &data)

	base := fmt.Sprintf("%s-report-%s", report.ReportType, report.ReportDate.Format(domain.DateFormat))

	switch format {
	case ExportFormatPDF:
		content, err := export.RenderPDF(doc)
		if err != nil {
			return nil, err
		}
		return &ExportResult{FileName: base + ".pdf", ContentType: "application/pdf", Content: content}, nil
	case ExportFormatExcel:
		content, err := export.RenderExcel(doc)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			FileName:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	case ExportFormatCSV:
		content, err := export.RenderCSV(doc)
		if err != nil {
			return nil, err
		}
		return &ExportResult{FileName: base + ".csv", ContentType: "text/csv", Content: content}, nil
	default:
		return nil, ErrUnsupportedExportFormat
	}
}

func buildReportDocument(businessName string, report *domain.Report, data *ReportData) *export.Document {
	title := map[domain.ReportType]string{
		domain.ReportTypeDaily:         "Daily Report",
		domain.ReportTypeWeekly:        "Weekly Report",
		domain.ReportTypeMonthly:       "Monthly Report",
		domain.ReportTypeMonthlyVAT:    "Monthly VAT Report",
		domain.ReportTypeTurnoverTax:   "Turnover Tax Report",
		domain.ReportTypeMaterialUsage: "Material Usage Report",
	}[report.ReportType]

	money := func(v float64) string {
		return fmt.Sprintf("%s %.2f", data.Currency, v)
	}

	doc := &export.Document{
		Title:       title,
		Subtitle:    businessName,
		PeriodLabel: fmt.Sprintf("%s to %s", data.From, data.To),
		GeneratedAt: report.GeneratedAt,
		Summary: []export.KV{
			{Label: "Total Revenue", Value: money(data.TotalRevenue)},
			{Label: "Total Expenses", Value: money(data.TotalExpenses)},
			{Label: "Profit", Value: money(data.Profit)},
			{Label: "Completed Jobs", Value: fmt.Sprintf("%d", data.CompletedJobs)},
			{Label: "Payments Received", Value: money(data.PaymentsReceived)},
		},
	}

	if data.VAT != nil {
		doc.Summary = append(doc.Summary,
			export.KV{Label: fmt.Sprintf("Net Revenue (excl. VAT %.0f%%)", data.VAT.Rate*100), Value: money(data.VAT.NetRevenue)},
			export.KV{Label: "VAT Due", Value: money(data.VAT.VATDue)},
		)
	}
	if data.TurnoverTax != nil {
		doc.Summary = append(doc.Summary,
			export.KV{Label: fmt.Sprintf("Turnover Tax (%.0f%%)", data.TurnoverTax.Rate*100), Value: money(data.TurnoverTax.TaxDue)},
			export.KV{Label: "Net After Tax", Value: money(data.TurnoverTax.NetAfterTax)},
		)
	}

	if len(data.JobTaxLines) > 0 {
		section := export.Section{
			Title:   "Jobs Breakdown with VAT",
			Headers: []string{"Client", "Job Type", "Date", "Gross", "Net", "VAT"},
		}
		if data.TurnoverTax != nil {
			section.Title = "Jobs Breakdown with Turnover Tax"
			section.Headers[5] = "Tax"
		}
		var gross, net, tax float64
		for _, line := range data.JobTaxLines {
			section.Rows = append(section.Rows, []string{
				line.ClientName,
				line.JobType,
				line.Date,
				money(line.Gross),
				money(line.Net),
				money(line.Tax),
			})
			gross += line.Gross
			net += line.Net
			tax += line.Tax
		}
		section.Footer = []string{"Total", "", "", money(gross), money(net), money(tax)}
		doc.Sections = append(doc.Sections, section)
	}

	if len(data.JobTypes) > 0 {
		section := export.Section{
			Title:   "Revenue by Job Type",
			Headers: []string{"Job Type", "Jobs", "Revenue"},
		}
		for _, line := range data.JobTypes {
			section.Rows = append(section.Rows, []string{line.JobType, fmt.Sprintf("%d", line.Count), money(line.Revenue)})
		}
		section.Footer = []string{"Total", fmt.Sprintf("%d", data.CompletedJobs), money(data.TotalRevenue)}
		doc.Sections = append(doc.Sections, section)
	}

	if len(data.ExpenseLines) > 0 {
		section := export.Section{
			Title:   "Expenses by Category",
			Headers: []string{"Category", "Amount"},
		}
		for _, line := range data.ExpenseLines {
			section.Rows = append(section.Rows, []string{line.Category, money(line.Amount)})
		}
		section.Footer = []string{"Total", money(data.TotalExpenses)}
		doc.Sections = append(doc.Sections, section)
	}

	if len(data.MaterialUsage) > 0 {
		section := export.Section{
			Title:   "Material Usage by Roll",
			Headers: []string{"Roll", "Material", "Jobs", "SQM Used", "Length (m)", "Cost", "Revenue", "Profit"},
		}
		for _, line := range data.MaterialUsage {
			section.Rows = append(section.Rows, []string{
				line.RollCode,
				line.MaterialType,
				fmt.Sprintf("%d", line.Jobs),
				fmt.Sprintf("%.2f", line.SqmUsed),
				fmt.Sprintf("%.2f", line.LengthDeducted),
				money(line.CostConsumed),
				money(line.Revenue),
				money(line.Profit),
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}
