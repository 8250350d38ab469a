package export

import (
	"bytes"
	"encoding/csv"
)

// RenderCSV writes the document as a flat CSV: the summary as label/value
// rows, then each section's table separated by a blank line.
func RenderCSV(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{doc.Title},
	}
	if doc.Subtitle != "" {
		records = append(records, []string{doc.Subtitle})
	}
	records = append(records,
		[]string{"Period", doc.PeriodLabel},
		[]string{"Generated", doc.GeneratedAt.Format("2006-01-02 15:04")},
		[]string{},
	)

	for _, kv := range doc.Summary {
		records = append(records, []string{kv.Label, kv.Value})
	}

	for _, section := range doc.Sections {
		records = append(records, []string{}, []string{section.Title}, section.Headers)
		records = append(records, section.Rows...)
		if len(section.Footer) > 0 {
			records = append(records, section.Footer)
		}
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
