// Package export renders tabular report documents to PDF, Excel and CSV.
// The renderers share one neutral document shape so every report type
// exports identically in all three formats.
package export

import "time"

// KV is one label/value pair in the document summary block
type KV struct {
	Label string
	Value string
}

// Section is one titled table
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
}

// Document is a renderer-neutral report layout: a title block, headline
// figures, then zero or more tables.
type Document struct {
	Title       string
	Subtitle    string
	PeriodLabel string
	GeneratedAt time.Time
	Summary     []KV
	Sections    []Section
}
