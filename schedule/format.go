package schedule

import (
	"strings"
)

// headerRule locates the header in a file. It returns the header's line index
// and its column names, or ok=false when no header exists.
type headerRule func(lines []string) (idx int, cols []string, ok bool)

// Format describes one schedule file layout. Parsing, filtering and searching
// are parameterised over it rather than over per-format record types.
type Format struct {
	Name string

	header   headerRule
	excluded map[string]bool

	// Candidate column names, matched case-insensitively against the header.
	timeCols   []string
	daysCols   []string
	targetCols []string

	// searchRow makes the search term match against the formatted row instead
	// of individual field values.
	searchRow bool
}

// FormatA is the EIBI-style layout: header on line 1, "name:type" columns.
var FormatA = &Format{
	Name:       "eibi",
	header:     eibiHeader,
	timeCols:   []string{"Time(UTC)", "Time", "UTC"},
	daysCols:   []string{"Days"},
	targetCols: []string{"Target", "ITU"},
	searchRow:  true,
}

// FormatB is the ILG-style layout: a commented preamble, a header line carrying
// FREQkhz, and geographic/remark columns that are dropped after parsing.
var FormatB = &Format{
	Name:   "ilg",
	header: ilgHeader,
	excluded: setOf(
		"Location", "Site", "Lat", "Latitude", "Lon", "Long", "Longitude",
		"Azimuth", "Azi", "Distance", "Remarks", "Remark", "Notes", "Comment",
		"Start", "Stop", "Modified", "Source", "ID",
	),
	timeCols:   []string{"Time(UTC)", "Time", "UTC"},
	daysCols:   []string{"Days"},
	targetCols: []string{"Target", "Target area", "Area"},
}

// ilgMarker identifies the Format B header line.
const ilgMarker = "FREQkhz"

// Formats lists the supported layouts by name.
var Formats = map[string]*Format{
	"a":    FormatA,
	"eibi": FormatA,
	"b":    FormatB,
	"ilg":  FormatB,
}

// FormatByName resolves "a", "b", "eibi" or "ilg". Unknown names return nil.
func FormatByName(name string) *Format {
	return Formats[strings.ToLower(strings.TrimSpace(name))]
}

// DetectFormat picks Format B when the text has an ILG header line and Format A
// otherwise.
func DetectFormat(text string) *Format {
	if _, _, ok := ilgHeader(splitLines(text)); ok {
		return FormatB
	}
	return FormatA
}

func eibiHeader(lines []string) (int, []string, bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return 0, nil, false
	}
	parts := strings.Split(lines[0], ";")
	// A trailing separator is a line terminator, not an unnamed column.
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		name, _, _ := strings.Cut(p, ":")
		cols = append(cols, strings.TrimSpace(name))
	}
	return 0, cols, true
}

func ilgHeader(lines []string) (int, []string, bool) {
	for i, line := range lines {
		if strings.HasPrefix(line, "##") || !strings.Contains(line, ilgMarker) {
			continue
		}
		var cols []string
		for _, p := range strings.Split(line, ";") {
			name := strings.TrimSpace(strings.Trim(strings.TrimSpace(p), "#"))
			if name == "" {
				continue
			}
			cols = append(cols, name)
		}
		if len(cols) == 0 {
			continue
		}
		return i, cols, true
	}
	return 0, nil, false
}

// resolve returns the first header column matching one of the candidates.
func resolve(cols []string, candidates []string) string {
	for _, want := range candidates {
		for _, c := range cols {
			if strings.EqualFold(c, want) {
				return c
			}
		}
	}
	return ""
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = true
	}
	return m
}

func (f *Format) isExcluded(col string) bool {
	return f.excluded[strings.ToLower(col)]
}
