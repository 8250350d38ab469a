package service_test

import (
	"testing"

	"github.com/netgenix/printshop-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCosting(t *testing.T) {
	// 2m x 1m banner, 3 pieces, on a 1.22m roll at K150/sqm selling, K50/sqm cost
	costing, err := service.ComputeCosting(2, 1, 3, 1.22, 50, 150)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, costing.SqmUsed, 1e-9)
	assert.InDelta(t, 900.0, costing.AmountDue, 1e-9)
	assert.InDelta(t, 6.0/1.22, costing.LengthDeducted, 1e-9)
	assert.InDelta(t, 300.0, costing.CostConsumed, 1e-9)
	assert.InDelta(t, 600.0, costing.Profit, 1e-9)
}

func TestComputeCosting_SinglePieceFullWidth(t *testing.T) {
	// Roll width 1: length deducted equals square metres
	costing, err := service.ComputeCosting(1.5, 2, 1, 1, 0, 100)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, costing.SqmUsed, 1e-9)
	assert.InDelta(t, 3.0, costing.LengthDeducted, 1e-9)
	assert.InDelta(t, 300.0, costing.AmountDue, 1e-9)
	assert.InDelta(t, 0.0, costing.CostConsumed, 1e-9)
}

func TestComputeCosting_InvalidInputs(t *testing.T) {
	cases := []struct {
		name      string
		width     float64
		height    float64
		quantity  int
		rollWidth float64
	}{
		{"zero width", 0, 1, 1, 1.22},
		{"negative height", 1, -1, 1, 1.22},
		{"zero quantity", 1, 1, 0, 1.22},
		{"zero roll width", 1, 1, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ComputeCosting(tc.width, tc.height, tc.quantity, tc.rollWidth, 50, 150)
			assert.ErrorIs(t, err, service.ErrInvalidDimensions)
		})
	}
}
