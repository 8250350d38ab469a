package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientMaterial is returned when a deduction would take a
	// roll's remaining length below zero.
	ErrInsufficientMaterial = errors.New("insufficient material remaining on roll")

	// ErrRollCompleted is returned when a deduction targets a roll that has
	// already been marked completed.
	ErrRollCompleted = errors.New("roll is completed and cannot be deducted from")

	// ErrPaymentRequired is returned when a job is moved to completed
	// without full payment details.
	ErrPaymentRequired = errors.New("payment amount, mode and receiver are required to complete a job")

	// ErrIdentityRequired is returned when payment details are present but
	// the receiver identity is missing.
	ErrIdentityRequired = errors.New("payment receiver identity is required")

	// ErrInvalidDimensions is returned when a costing request carries
	// non-positive width, height or quantity.
	ErrInvalidDimensions = errors.New("width, height and quantity must be positive")

	// ErrInvalidDateRange is returned when a report range has from after to.
	ErrInvalidDateRange = errors.New("range start must not be after range end")

	// ErrUnsupportedReportType is returned for report types the aggregator
	// does not know.
	ErrUnsupportedReportType = errors.New("unsupported report type")

	// ErrUnsupportedExportFormat is returned for export formats other than
	// pdf, excel and csv.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	// ErrDuplicateRollCode is returned when a roll is created with a code
	// that already exists.
	ErrDuplicateRollCode = errors.New("roll code already exists")
)

// InsufficientMaterialError carries the length a job needed against what the
// roll still holds, in linear metres. It matches ErrInsufficientMaterial
// under errors.Is.
type InsufficientMaterialError struct {
	RequiredLength  float64
	AvailableLength float64
}

func (e *InsufficientMaterialError) Error() string {
	return fmt.Sprintf("insufficient material remaining on roll: required %.2fm, available %.2fm",
		e.RequiredLength, e.AvailableLength)
}

func (e *InsufficientMaterialError) Unwrap() error {
	return ErrInsufficientMaterial
}
