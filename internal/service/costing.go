package service

// JobCosting holds the derived figures for a print job on roll material.
// All material maths run off square metres: a job consumes
// width x height x quantity square metres regardless of how the pieces are
// nested on the roll.
type JobCosting struct {
	SqmUsed        float64
	AmountDue      float64
	LengthDeducted float64
	CostConsumed   float64
	Profit         float64
}

// ComputeCosting derives the costing figures for a job.
//
//	sqmUsed        = width * height * quantity
//	amountDue      = sqmUsed * sellingRatePerSqm
//	lengthDeducted = sqmUsed / rollWidth  (linear metres pulled off the roll)
//	costConsumed   = sqmUsed * costPerSqm
//	profit         = amountDue - costConsumed
//
// Width and height are in metres. rollWidth must be positive; the roll
// columns are validated at creation so a zero here indicates a caller bug.
func ComputeCosting(width, height float64, quantity int, rollWidth, costPerSqm, ratePerSqm float64) (JobCosting, error) {
	if width <= 0 || height <= 0 || quantity <= 0 {
		return JobCosting{}, ErrInvalidDimensions
	}
	if rollWidth <= 0 {
		return JobCosting{}, ErrInvalidDimensions
	}

	sqm := width * height * float64(quantity)
	amount := sqm * ratePerSqm
	length := sqm / rollWidth
	cost := sqm * costPerSqm

	return JobCosting{
		SqmUsed:        sqm,
		AmountDue:      amount,
		LengthDeducted: length,
		CostConsumed:   cost,
		Profit:         amount - cost,
	}, nil
}
