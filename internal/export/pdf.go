package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF writes the document as a portrait A4 PDF.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, doc.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if doc.Subtitle != "" {
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Period: "+doc.PeriodLabel, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+doc.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, kv := range doc.Summary {
		pdf.CellFormat(70, 7, kv.Label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, kv.Value, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, section := range doc.Sections {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, section.Title, "", 1, "L", false, 0, "")

		colWidth := usable / float64(len(section.Headers))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, header := range section.Headers {
			pdf.CellFormat(colWidth, 7, header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, row := range section.Rows {
			for _, cell := range row {
				pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}

		if len(section.Footer) > 0 {
			pdf.SetFont("Helvetica", "B", 9)
			for _, cell := range section.Footer {
				pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
