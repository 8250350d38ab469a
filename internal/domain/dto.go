package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for calendar-day fields
const DateFormat = "2006-01-02"

// MaterialRollDTO is the API shape of a material roll
type MaterialRollDTO struct {
	ID                uuid.UUID    `json:"id"`
	RollCode          string       `json:"rollCode"`
	MaterialType      MaterialType `json:"materialType"`
	RollWidth         float64      `json:"rollWidth"`
	InitialLength     float64      `json:"initialLength"`
	RemainingLength   float64      `json:"remainingLength"`
	RemainingSqm      float64      `json:"remainingSqm"`
	CostPerSqm        float64      `json:"costPerSqm"`
	SellingRatePerSqm float64      `json:"sellingRatePerSqm"`
	AlertLevel        float64      `json:"alertLevel"`
	Status            RollStatus   `json:"status"`
	LowStock          bool         `json:"lowStock"`
	CreatedAt         string       `json:"createdAt"` // ISO 8601
	UpdatedAt         string       `json:"updatedAt"` // ISO 8601
}

// CreateRollRequest creates a roll; remaining length always starts at the
// initial length.
type CreateRollRequest struct {
	RollCode          string       `json:"rollCode" validate:"required,max=50"`
	MaterialType      MaterialType `json:"materialType" validate:"required,oneof=Vinyl 'PVC Banner' 'Banner Material' DTF"`
	RollWidth         float64      `json:"rollWidth" validate:"omitempty,gt=0"`
	InitialLength     float64      `json:"initialLength" validate:"required,gt=0"`
	CostPerSqm        float64      `json:"costPerSqm" validate:"gte=0"`
	SellingRatePerSqm float64      `json:"sellingRatePerSqm" validate:"gte=0"`
	AlertLevel        *float64     `json:"alertLevel" validate:"omitempty,gte=0"`
}

// UpdateRollRequest edits roll metadata. Remaining length is never reset by
// an edit; it only moves through job deduction and restoration.
type UpdateRollRequest struct {
	RollCode          string       `json:"rollCode" validate:"required,max=50"`
	MaterialType      MaterialType `json:"materialType" validate:"required,oneof=Vinyl 'PVC Banner' 'Banner Material' DTF"`
	RollWidth         float64      `json:"rollWidth" validate:"required,gt=0"`
	InitialLength     float64      `json:"initialLength" validate:"required,gt=0"`
	CostPerSqm        float64      `json:"costPerSqm" validate:"gte=0"`
	SellingRatePerSqm float64      `json:"sellingRatePerSqm" validate:"gte=0"`
	AlertLevel        float64      `json:"alertLevel" validate:"gte=0"`
}

// JobDTO is the API shape of a job
type JobDTO struct {
	ID              uuid.UUID    `json:"id"`
	ClientName      string       `json:"clientName"`
	JobType         string       `json:"jobType"`
	MaterialsUsed   string       `json:"materialsUsed,omitempty"`
	Cost            float64      `json:"cost"`
	Status          JobStatus    `json:"status"`
	CompletionDate  string       `json:"completionDate,omitempty"` // yyyy-mm-dd
	MaterialRollID  *uuid.UUID   `json:"materialRollId,omitempty"`
	RollCode        string       `json:"rollCode,omitempty"`
	JobWidth        *float64     `json:"jobWidth,omitempty"`
	JobHeight       *float64     `json:"jobHeight,omitempty"`
	JobQuantity     *int         `json:"jobQuantity,omitempty"`
	SqmUsed         *float64     `json:"sqmUsed,omitempty"`
	LengthDeducted  *float64     `json:"lengthDeducted,omitempty"`
	RatePerSqm      *float64     `json:"ratePerSqm,omitempty"`
	PaymentReceived float64      `json:"paymentReceived"`
	PaymentMode     *PaymentMode `json:"paymentMode,omitempty"`
	ReceivedBy      *string      `json:"receivedBy,omitempty"`
	PaymentAt       *time.Time   `json:"paymentAt,omitempty"`
	CreatedAt       string       `json:"createdAt"` // ISO 8601
	UpdatedAt       string       `json:"updatedAt"` // ISO 8601
}

// CreateJobRequest creates a plain or material-linked job. When
// MaterialRollID is set the geometry fields are required and the billing and
// consumption figures are computed server-side; any client-sent cost is
// ignored for material jobs. A fully recorded payment completes the job
// regardless of the requested status.
type CreateJobRequest struct {
	ClientName      string       `json:"clientName" validate:"required,max=200"`
	JobType         string       `json:"jobType" validate:"required,max=100"`
	MaterialsUsed   string       `json:"materialsUsed" validate:"max=500"`
	Cost            float64      `json:"cost" validate:"gte=0"`
	Status          JobStatus    `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	CompletionDate  string       `json:"completionDate" validate:"omitempty,datetime=2006-01-02"`
	MaterialRollID  *uuid.UUID   `json:"materialRollId"`
	JobWidth        *float64     `json:"jobWidth" validate:"omitempty,gt=0"`
	JobHeight       *float64     `json:"jobHeight" validate:"omitempty,gt=0"`
	JobQuantity     *int         `json:"jobQuantity" validate:"omitempty,gte=1"`
	RatePerSqm      *float64     `json:"ratePerSqm" validate:"omitempty,gte=0"`
	PaymentReceived float64      `json:"paymentReceived" validate:"gte=0"`
	PaymentMode     *PaymentMode `json:"paymentMode" validate:"omitempty,oneof=Cash 'Mobile Money' Credit"`
	ReceivedBy      *string      `json:"receivedBy" validate:"omitempty,max=200"`
}

// UpdateJobRequest edits job fields. Status may only move to completed when
// payment has been recorded, and a fully recorded payment moves the job to
// completed on its own.
type UpdateJobRequest struct {
	ClientName      string       `json:"clientName" validate:"required,max=200"`
	JobType         string       `json:"jobType" validate:"required,max=100"`
	MaterialsUsed   string       `json:"materialsUsed" validate:"max=500"`
	Cost            float64      `json:"cost" validate:"gte=0"`
	Status          JobStatus    `json:"status" validate:"required,oneof=pending in_progress completed"`
	CompletionDate  string       `json:"completionDate" validate:"omitempty,datetime=2006-01-02"`
	PaymentReceived float64      `json:"paymentReceived" validate:"gte=0"`
	PaymentMode     *PaymentMode `json:"paymentMode" validate:"omitempty,oneof=Cash 'Mobile Money' Credit"`
	ReceivedBy      *string      `json:"receivedBy" validate:"omitempty,max=200"`
}

// CostingRequest asks for a billing/consumption quote against a roll without
// creating anything
type CostingRequest struct {
	MaterialRollID uuid.UUID `json:"materialRollId" validate:"required"`
	Width          float64   `json:"width" validate:"required,gt=0"`
	Height         float64   `json:"height" validate:"required,gt=0"`
	Quantity       int       `json:"quantity" validate:"required,gte=1"`
	RatePerSqm     float64   `json:"ratePerSqm" validate:"gte=0"`
}

// CostingDTO is the quote result
type CostingDTO struct {
	SqmUsed        float64 `json:"sqmUsed"`
	AmountDue      float64 `json:"amountDue"`
	LengthDeducted float64 `json:"lengthDeducted"`
	CostConsumed   float64 `json:"costConsumed"`
	Sufficient     bool    `json:"sufficient"`
	Available      float64 `json:"available"`
}

// ClearCompletedDTO summarizes a bulk clear of completed jobs
type ClearCompletedDTO struct {
	JobsDeleted   int64 `json:"jobsDeleted"`
	RollsRestored int   `json:"rollsRestored"`
}

// MaterialDTO is the API shape of a simple stock item
type MaterialDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Threshold   float64   `json:"threshold"`
	CostPerUnit float64   `json:"costPerUnit"`
	LowStock    bool      `json:"lowStock"`
	CreatedAt   string    `json:"createdAt"` // ISO 8601
	UpdatedAt   string    `json:"updatedAt"` // ISO 8601
}

// CreateMaterialRequest creates a stock item
type CreateMaterialRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required,max=50"`
	Threshold   float64 `json:"threshold" validate:"gte=0"`
	CostPerUnit float64 `json:"costPerUnit" validate:"gte=0"`
}

// UpdateMaterialRequest edits a stock item
type UpdateMaterialRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required,max=50"`
	Threshold   float64 `json:"threshold" validate:"gte=0"`
	CostPerUnit float64 `json:"costPerUnit" validate:"gte=0"`
}

// ExpenseDTO is the API shape of an expense
type ExpenseDTO struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	ExpenseDate string    `json:"expenseDate"` // yyyy-mm-dd
	CreatedAt   string    `json:"createdAt"`   // ISO 8601
	UpdatedAt   string    `json:"updatedAt"`   // ISO 8601
}

// CreateExpenseRequest records an expense
type CreateExpenseRequest struct {
	Category    string  `json:"category" validate:"required,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=500"`
	ExpenseDate string  `json:"expenseDate" validate:"required,datetime=2006-01-02"`
}

// UpdateExpenseRequest edits an expense
type UpdateExpenseRequest struct {
	Category    string  `json:"category" validate:"required,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=500"`
	ExpenseDate string  `json:"expenseDate" validate:"required,datetime=2006-01-02"`
}

// GenerateReportRequest triggers one aggregation run. Daily and weekly
// reports derive their own range when from/to are omitted.
type GenerateReportRequest struct {
	ReportType ReportType `json:"reportType" validate:"required,oneof=daily weekly monthly monthly_vat turnover_tax material_usage"`
	From       string     `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string     `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ReportDTO is the API shape of a persisted report snapshot
type ReportDTO struct {
	ID          uuid.UUID  `json:"id"`
	ReportType  ReportType `json:"reportType"`
	ReportDate  string     `json:"reportDate"` // yyyy-mm-dd
	ReportData  JSON       `json:"reportData"`
	GeneratedAt time.Time  `json:"generatedAt"`
}

// DashboardStatsDTO is the headline-figures payload
type DashboardStatsDTO struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	Profit        float64 `json:"profit"`
	ActiveJobs    int64   `json:"activeJobs"`
	CompletedJobs int64   `json:"completedJobs"`
	LowStockCount int     `json:"lowStockCount"`
}

// PerformancePointDTO is one day in the revenue/expense series
type PerformancePointDTO struct {
	Date    string  `json:"date"` // yyyy-mm-dd
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// LowStockItemDTO is one flagged roll or material
type LowStockItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"` // "roll" or "material"
	Name      string    `json:"name"`
	Remaining float64   `json:"remaining"`
	Threshold float64   `json:"threshold"`
	Unit      string    `json:"unit"`
}

// LowStockDTO is the alerts summary
type LowStockDTO struct {
	Items []LowStockItemDTO `json:"items"`
	Count int               `json:"count"`
}

// SettingsDTO is the API shape of the business settings row
type SettingsDTO struct {
	BusinessName      string  `json:"businessName"`
	TPIN              string  `json:"tpin,omitempty"`
	Currency          string  `json:"currency"`
	VATRate           float64 `json:"vatRate"`
	TurnoverTaxRate   float64 `json:"turnoverTaxRate"`
	DefaultAlertLevel float64 `json:"defaultAlertLevel"`
	UpdatedAt         string  `json:"updatedAt"` // ISO 8601
}

// UpdateSettingsRequest saves the business settings
type UpdateSettingsRequest struct {
	BusinessName      string  `json:"businessName" validate:"required,max=200"`
	TPIN              string  `json:"tpin" validate:"max=50"`
	Currency          string  `json:"currency" validate:"required,max=10"`
	VATRate           float64 `json:"vatRate" validate:"gte=0,lt=1"`
	TurnoverTaxRate   float64 `json:"turnoverTaxRate" validate:"gte=0,lt=1"`
	DefaultAlertLevel float64 `json:"defaultAlertLevel" validate:"gte=0"`
}

// ProfileDTO is the API shape of the current user's profile
type ProfileDTO struct {
	ID       uuid.UUID    `json:"id"`
	FullName string       `json:"fullName,omitempty"`
	Email    string       `json:"email,omitempty"`
	Role     UserRoleType `json:"role"`
}

// PaginatedResponse wraps list results
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
