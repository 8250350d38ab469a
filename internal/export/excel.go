package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderExcel writes the document as a single-sheet XLSX workbook.
func RenderExcel(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	row := 1
	setRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}
	styleRow := func(r, cols, style int) error {
		start, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(cols, r)
		if err != nil {
			return err
		}
		return f.SetCellStyle(sheet, start, end, style)
	}

	if err := setRow([]interface{}{doc.Title}); err != nil {
		return nil, err
	}
	if err := styleRow(row-1, 1, titleStyle); err != nil {
		return nil, err
	}
	if doc.Subtitle != "" {
		if err := setRow([]interface{}{doc.Subtitle}); err != nil {
			return nil, err
		}
	}
	if err := setRow([]interface{}{fmt.Sprintf("Period: %s", doc.PeriodLabel)}); err != nil {
		return nil, err
	}
	if err := setRow([]interface{}{fmt.Sprintf("Generated: %s", doc.GeneratedAt.Format("2006-01-02 15:04"))}); err != nil {
		return nil, err
	}
	row++

	for _, kv := range doc.Summary {
		if err := setRow([]interface{}{kv.Label, kv.Value}); err != nil {
			return nil, err
		}
	}

	for _, section := range doc.Sections {
		row++
		if err := setRow([]interface{}{section.Title}); err != nil {
			return nil, err
		}
		if err := styleRow(row-1, 1, boldStyle); err != nil {
			return nil, err
		}

		headers := make([]interface{}, len(section.Headers))
		for i, h := range section.Headers {
			headers[i] = h
		}
		if err := setRow(headers); err != nil {
			return nil, err
		}
		if err := styleRow(row-1, len(section.Headers), headerStyle); err != nil {
			return nil, err
		}

		for _, r := range section.Rows {
			values := make([]interface{}, len(r))
			for i, v := range r {
				values[i] = v
			}
			if err := setRow(values); err != nil {
				return nil, err
			}
		}

		if len(section.Footer) > 0 {
			values := make([]interface{}, len(section.Footer))
			for i, v := range section.Footer {
				values[i] = v
			}
			if err := setRow(values); err != nil {
				return nil, err
			}
			if err := styleRow(row-1, len(section.Footer), boldStyle); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "H", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
