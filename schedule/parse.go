package schedule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-tuner/logging"
)

var (
	// ErrEmptyFile is returned when the input holds no text at all.
	ErrEmptyFile = errors.New("schedule file is empty")
	// ErrNoHeader is returned when the format's header line cannot be found.
	ErrNoHeader = errors.New("schedule header not found")
)

// Filters are the load-time predicates. They are applied to each record right
// after it is built; a record failing either is never stored.
type Filters struct {
	ActiveOnly bool
	Target     string
}

// IsZero reports whether no load-time filter is set.
func (f Filters) IsZero() bool {
	return !f.ActiveOnly && strings.TrimSpace(f.Target) == ""
}

// Parse turns raw schedule text into a Schedule. at is the instant the
// active-only predicate is evaluated against.
//
// Malformed data lines are skipped and counted; only an empty input or a
// missing header fails the whole parse.
func Parse(text string, f *Format, filters Filters, at time.Time) (*Schedule, error) {
	if f == nil {
		return nil, errors.New("schedule format is nil")
	}
	text = normaliseText(text)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyFile
	}

	lines := splitLines(text)
	hdrIdx, cols, ok := f.header(lines)
	if !ok {
		return nil, fmt.Errorf("%s: %w", f.Name, ErrNoHeader)
	}
	cols = uniqueNames(cols)

	s := &Schedule{
		Format:    f,
		freqCol:   cols[0],
		timeCol:   resolve(cols, f.timeCols),
		daysCol:   resolve(cols, f.daysCols),
		targetCol: resolve(cols, f.targetCols),
	}
	target := strings.ToLower(strings.TrimSpace(filters.Target))
	if target != "" && s.targetCol == "" {
		logging.Warnf("schedule: %s header has no target column, ignoring target filter %q", f.Name, filters.Target)
		s.TargetIgnored = true
		target = ""
	}

	for i := hdrIdx + 1; i < len(lines); i++ {
		rec, ok := parseLine(lines[i], cols)
		if !ok {
			if looksLikeData(lines[i]) {
				s.Skipped++
				logging.Debugf("schedule: skipping line %d: %q", i+1, lines[i])
			}
			continue
		}
		rec.line = i + 1

		if filters.ActiveOnly && !s.ActiveAt(rec, at) {
			continue
		}
		if target != "" && !strings.Contains(strings.ToLower(rec.Value(s.targetCol)), target) {
			continue
		}
		s.Records = append(s.Records, rec)
	}

	for _, c := range cols {
		if f.isExcluded(c) && c != s.freqCol {
			for _, r := range s.Records {
				delete(r.fields, c)
			}
			continue
		}
		s.Columns = append(s.Columns, Column{Name: c})
	}
	s.computeWidths()

	logging.Infof("schedule: parsed %d records (%d skipped) format=%s columns=%d",
		len(s.Records), s.Skipped, f.Name, len(s.Columns))
	return s, nil
}

// parseLine assigns the line's fields positionally to cols. ok is false for
// blank lines and lines whose first field is not a frequency.
func parseLine(line string, cols []string) (Record, bool) {
	if strings.TrimSpace(line) == "" {
		return Record{}, false
	}
	parts := strings.Split(line, ";")
	freq, ok := parseFrequency(parts[0])
	if !ok {
		return Record{}, false
	}

	fields := make(map[string]string, len(cols))
	for i, c := range cols {
		switch {
		case i == 0:
			fields[c] = FormatFrequency(freq)
		case i < len(parts):
			fields[c] = strings.TrimSpace(parts[i])
		default:
			fields[c] = ""
		}
	}
	return Record{Frequency: freq, fields: fields}, true
}

// parseFrequency accepts plain non-negative decimals only: digits with at most
// one decimal point. Signs, exponents, NaN and Inf are rejected.
func parseFrequency(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return 0, false
	}
	dot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// looksLikeData separates rejected data lines from comments and blank lines
// so that only the former are reported as skipped.
func looksLikeData(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && line[0] >= '0' && line[0] <= '9'
}

func normaliseText(text string) string {
	text = strings.ToValidUTF8(text, "")
	return strings.TrimPrefix(text, "\ufeff")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// uniqueNames keeps column names unique within a schema by suffixing repeats.
// A suffix never collides with a name the header already uses.
func uniqueNames(cols []string) []string {
	taken := make(map[string]bool, len(cols))
	for _, c := range cols {
		taken[c] = true
	}
	first := make(map[string]bool, len(cols))
	out := make([]string, len(cols))
	for i, c := range cols {
		if !first[c] {
			first[c] = true
			out[i] = c
			continue
		}
		name := c
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", c, n)
		}
		taken[name] = true
		out[i] = name
	}
	return out
}
