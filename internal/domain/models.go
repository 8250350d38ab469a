package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate generates the primary key when the caller did not set one
func (b *BaseModel) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// MaterialType represents the printable media a roll is made of
type MaterialType string

const (
	MaterialTypeVinyl     MaterialType = "Vinyl"
	MaterialTypePVCBanner MaterialType = "PVC Banner"
	MaterialTypeBanner    MaterialType = "Banner Material"
	MaterialTypeDTF       MaterialType = "DTF"
)

// IsValid checks if the material type is a known value
func (mt MaterialType) IsValid() bool {
	switch mt {
	case MaterialTypeVinyl, MaterialTypePVCBanner, MaterialTypeBanner, MaterialTypeDTF:
		return true
	}
	return false
}

// RollStatus represents the lifecycle state of a material roll
type RollStatus string

const (
	RollStatusActive    RollStatus = "active"
	RollStatusCompleted RollStatus = "completed"
)

// MaterialRoll represents a spool of printable material tracked by remaining
// linear length. RollCode is the user-facing identifier printed on the roll
// and is not required to be unique.
type MaterialRoll struct {
	BaseModel
	RollCode          string       `gorm:"type:varchar(50);not null;index;column:roll_code"`
	MaterialType      MaterialType `gorm:"type:varchar(50);not null;index"`
	RollWidth         float64      `gorm:"not null;default:1"`
	InitialLength     float64      `gorm:"not null"`
	RemainingLength   float64      `gorm:"not null"`
	CostPerSqm        float64      `gorm:"not null;default:0"`
	SellingRatePerSqm float64      `gorm:"not null;default:0"`
	AlertLevel        float64      `gorm:"not null;default:5"`
	Status            RollStatus   `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedBy         *uuid.UUID   `gorm:"type:uuid;column:created_by"`
}

// IsLowStock flags a roll whose remaining length has fallen to or below the
// alert level. Completed rolls are never flagged.
func (r *MaterialRoll) IsLowStock() bool {
	return r.Status == RollStatusActive && r.RemainingLength <= r.AlertLevel
}

// RemainingSqm returns the printable area left on the roll
func (r *MaterialRoll) RemainingSqm() float64 {
	return r.RollWidth * r.RemainingLength
}

// IsCompleted reports whether the roll has been closed out. Completed rolls
// are read-only: no edits, deletes, or further deductions.
func (r *MaterialRoll) IsCompleted() bool {
	return r.Status == RollStatusCompleted
}

// JobStatus represents the status of a print job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

// PaymentMode represents how a job was paid for
type PaymentMode string

const (
	PaymentModeCash        PaymentMode = "Cash"
	PaymentModeMobileMoney PaymentMode = "Mobile Money"
	PaymentModeCredit      PaymentMode = "Credit"
)

// IsValid checks if the payment mode is a known value
func (pm PaymentMode) IsValid() bool {
	switch pm {
	case PaymentModeCash, PaymentModeMobileMoney, PaymentModeCredit:
		return true
	}
	return false
}

// Job represents a customer print/embroidery job. Material-linked jobs carry
// the geometry and consumption figures computed at creation time; the roll
// reference becomes NULL if the roll is later deleted.
type Job struct {
	BaseModel
	ClientName      string        `gorm:"type:varchar(200);not null;index"`
	JobType         string        `gorm:"type:varchar(100);not null"`
	MaterialsUsed   string        `gorm:"type:varchar(500)"`
	Cost            float64       `gorm:"not null"`
	Status          JobStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CompletionDate  *time.Time    `gorm:"type:date;index"`
	MaterialRollID  *uuid.UUID    `gorm:"type:uuid;column:material_roll_id;index"`
	MaterialRoll    *MaterialRoll `gorm:"foreignKey:MaterialRollID;constraint:OnDelete:SET NULL"`
	JobWidth        *float64
	JobHeight       *float64
	JobQuantity     *int
	SqmUsed         *float64
	LengthDeducted  *float64
	RatePerSqm      *float64
	PaymentReceived float64      `gorm:"not null;default:0"`
	PaymentMode     *PaymentMode `gorm:"type:varchar(30)"`
	ReceivedBy      *string      `gorm:"type:varchar(200)"`
	PaymentAt       *time.Time
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null;column:created_by"`
}

// IsMaterialLinked reports whether the job consumed length from a roll
func (j *Job) IsMaterialLinked() bool {
	return j.MaterialRollID != nil
}

// RestoreAmount returns the roll length to credit back when the job is
// deleted: the recorded deduction, falling back to SQM for legacy rows.
func (j *Job) RestoreAmount() float64 {
	if j.LengthDeducted != nil && *j.LengthDeducted > 0 {
		return *j.LengthDeducted
	}
	if j.SqmUsed != nil && *j.SqmUsed > 0 {
		return *j.SqmUsed
	}
	return 0
}

// Material represents a simple stock item (ink, thread, transfer film)
// counted in units, distinct from length-tracked rolls.
type Material struct {
	BaseModel
	Name        string  `gorm:"type:varchar(200);not null;index"`
	Quantity    float64 `gorm:"not null;default:0"`
	Unit        string  `gorm:"type:varchar(50);not null"`
	Threshold   float64 `gorm:"not null;default:0"`
	CostPerUnit float64 `gorm:"not null;default:0"`
}

// IsLowStock flags a material whose quantity has fallen strictly below its
// restock threshold.
func (m *Material) IsLowStock() bool {
	return m.Quantity < m.Threshold
}

// Expense represents a business expense on a given calendar day
type Expense struct {
	BaseModel
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Amount      float64   `gorm:"not null"`
	Description string    `gorm:"type:varchar(500)"`
	ExpenseDate time.Time `gorm:"type:date;not null;index"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;column:created_by"`
}

// ReportType represents the kind of aggregated report snapshot
type ReportType string

const (
	ReportTypeDaily         ReportType = "daily"
	ReportTypeWeekly        ReportType = "weekly"
	ReportTypeMonthly       ReportType = "monthly"
	ReportTypeMonthlyVAT    ReportType = "monthly_vat"
	ReportTypeTurnoverTax   ReportType = "turnover_tax"
	ReportTypeMaterialUsage ReportType = "material_usage"
)

// IsValid checks if the report type is a known value
func (rt ReportType) IsValid() bool {
	switch rt {
	case ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly,
		ReportTypeMonthlyVAT, ReportTypeTurnoverTax, ReportTypeMaterialUsage:
		return true
	}
	return false
}

// JSON is a raw JSON column value usable with both Postgres and SQLite
type JSON json.RawMessage

// Value implements driver.Valuer
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSON(v)
	default:
		return errors.New("unsupported type for JSON column")
	}
	return nil
}

// MarshalJSON returns the raw bytes
func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON stores the raw bytes
func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// Report is an immutable snapshot of an aggregation run. ReportDate is the
// end of the aggregated range; ReportData holds the aggregated figures.
type Report struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	ReportType  ReportType `gorm:"type:varchar(30);not null;index"`
	ReportDate  time.Time  `gorm:"type:date;not null;index"`
	ReportData  JSON       `gorm:"type:jsonb;not null"`
	GeneratedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate generates the primary key when the caller did not set one
func (r *Report) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Profile represents the identity record stamped onto created rows
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FullName  string    `gorm:"type:varchar(200)"`
	AvatarURL string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BusinessSettings is the single-row server-side configuration store for
// business identity and tax constants. Seeded from config defaults on first
// boot, then owned by the settings endpoint.
type BusinessSettings struct {
	ID                int       `gorm:"primary_key"`
	BusinessName      string    `gorm:"type:varchar(200);not null"`
	TPIN              string    `gorm:"type:varchar(50);column:tpin"`
	Currency          string    `gorm:"type:varchar(10);not null;default:'ZMW'"`
	VATRate           float64   `gorm:"not null;default:0.16;column:vat_rate"`
	TurnoverTaxRate   float64   `gorm:"not null;default:0.05"`
	DefaultAlertLevel float64   `gorm:"not null;default:5"`
	UpdatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName keeps the settings table singular
func (BusinessSettings) TableName() string {
	return "business_settings"
}

// UserRoleType represents an authorization role carried in the JWT
type UserRoleType string

const (
	RoleAdmin UserRoleType = "admin"
	RoleStaff UserRoleType = "staff"
)
