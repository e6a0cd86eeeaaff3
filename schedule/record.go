package schedule

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnPadding is added to every computed column width.
const columnPadding = 2

// Column is one entry of a loaded schema.
type Column struct {
	Name  string
	Width int
}

// Record is one parsed schedule entry. Every record of a Schedule carries the
// same key set as the Schedule's columns; the frequency column is held as a
// float and rendered with two decimals.
type Record struct {
	Frequency float64
	fields    map[string]string
	line      int // 1-based line in the source file
}

// Value returns the formatted value of the named column, or "" when the
// column is not part of the record.
func (r Record) Value(col string) string {
	if col == "" {
		return ""
	}
	return r.fields[col]
}

// Line reports the source line the record was parsed from.
func (r Record) Line() int {
	return r.line
}

// FormatFrequency renders a kHz value the way it is displayed.
func FormatFrequency(khz float64) string {
	return fmt.Sprintf("%.2f", khz)
}

// Schedule is the result of one parse: a schema plus its records in file order.
type Schedule struct {
	Format  *Format
	Columns []Column
	Records []Record
	Skipped int // data-looking lines dropped during parsing

	// TargetIgnored is set when a target filter was requested but the header
	// has no target column to apply it to.
	TargetIgnored bool

	freqCol   string
	timeCol   string
	daysCol   string
	targetCol string
}

// FrequencyColumn is the name of the numeric column.
func (s *Schedule) FrequencyColumn() string {
	return s.freqCol
}

// ColumnNames returns the schema in display order.
func (s *Schedule) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Fields returns the record's values in schema order.
func (s *Schedule) Fields(r Record) []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = r.Value(c.Name)
	}
	return out
}

// FormatRow renders a record as a fixed-width row using the column widths.
func (s *Schedule) FormatRow(r Record) string {
	var b strings.Builder
	for _, c := range s.Columns {
		b.WriteString(runewidth.FillRight(r.Value(c.Name), c.Width))
	}
	return strings.TrimRight(b.String(), " ")
}

// FormatHeader renders the column names padded like FormatRow.
func (s *Schedule) FormatHeader() string {
	var b strings.Builder
	for _, c := range s.Columns {
		b.WriteString(runewidth.FillRight(c.Name, c.Width))
	}
	return strings.TrimRight(b.String(), " ")
}

func (s *Schedule) computeWidths() {
	for i := range s.Columns {
		w := runewidth.StringWidth(s.Columns[i].Name)
		for _, r := range s.Records {
			if vw := runewidth.StringWidth(r.Value(s.Columns[i].Name)); vw > w {
				w = vw
			}
		}
		s.Columns[i].Width = w + columnPadding
	}
}
