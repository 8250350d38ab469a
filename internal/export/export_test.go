package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/netgenix/printshop-api/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() *export.Document {
	return &export.Document{
		Title:       "Monthly Report",
		Subtitle:    "NetGenix",
		PeriodLabel: "2026-08-01 to 2026-08-31",
		GeneratedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Summary: []export.KV{
			{Label: "Total Revenue", Value: "ZMW 1160.00"},
			{Label: "Profit", Value: "ZMW 900.00"},
		},
		Sections: []export.Section{
			{
				Title:   "Revenue by Job Type",
				Headers: []string{"Job Type", "Jobs", "Revenue"},
				Rows: [][]string{
					{"Banner Printing", "3", "ZMW 860.00"},
					{"Embroidery", "1", "ZMW 300.00"},
				},
				Footer: []string{"Total", "4", "ZMW 1160.00"},
			},
		},
	}
}

func TestRenderPDF(t *testing.T) {
	content, err := export.RenderPDF(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestRenderExcel(t *testing.T) {
	content, err := export.RenderExcel(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	joined := strings.Join(flat, "|")
	assert.Contains(t, joined, "Monthly Report")
	assert.Contains(t, joined, "Banner Printing")
	assert.Contains(t, joined, "ZMW 1160.00")
}

func TestRenderCSV(t *testing.T) {
	content, err := export.RenderCSV(sampleDocument())
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "Monthly Report")
	assert.Contains(t, text, "Total Revenue,ZMW 1160.00")
	assert.Contains(t, text, "Banner Printing,3,ZMW 860.00")
	assert.Contains(t, text, "Total,4,ZMW 1160.00")
}

func TestRenderCSV_EmptySections(t *testing.T) {
	doc := &export.Document{
		Title:       "Daily Report",
		GeneratedAt: time.Now().UTC(),
	}
	content, err := export.RenderCSV(doc)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Daily Report")
}
