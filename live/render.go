package live

import (
	"time"

	"github.com/andareed/siftly-tuner/schedule"
)

// Highlight classifies a row of the render instruction.
type Highlight int

const (
	HighlightNone Highlight = iota
	// HighlightFrequency: within 10 Hz of the live frequency.
	HighlightFrequency
	// HighlightSchedule: frequency match that is also on the air right now.
	HighlightSchedule
	// HighlightMarker: the synthetic "no match" row.
	HighlightMarker
)

func (h Highlight) String() string {
	switch h {
	case HighlightFrequency:
		return "frequency"
	case HighlightSchedule:
		return "frequency+schedule"
	case HighlightMarker:
		return "marker"
	default:
		return "none"
	}
}

// Row is one display row. Record indexes the displayed set and is -1 for the
// marker row.
type Row struct {
	Record    int
	Highlight Highlight
}

// IsMarker reports whether the row is the synthetic marker.
func (r Row) IsMarker() bool { return r.Record < 0 }

// Render is the instruction handed to the presentation layer.
type Render struct {
	Rows   []Row
	Marker int // row index of the marker, -1 when absent
	Center int // row to centre on, -1 for none
	Match  schedule.MatchResult

	// Version is the source version the rows were built against. Row indices
	// are only valid while the source still reports it.
	Version uint64
}

// HasMarker reports whether a marker row is present.
func (r Render) HasMarker() bool { return r.Marker >= 0 }

func emptyRender() Render {
	return Render{Marker: -1, Center: -1, Match: schedule.Match(nil, 0, false)}
}

// Build computes the render instruction for targetKHz against the source's
// displayed records, classifying exact matches by their activity at instant.
func Build(src Source, targetKHz float64, ok bool, at time.Time) Render {
	recs := src.Displayed()
	m := schedule.Match(recs, targetKHz, ok)

	r := Render{
		Rows:    make([]Row, 0, len(recs)+1),
		Marker:  -1,
		Center:  -1,
		Match:   m,
		Version: src.Version(),
	}

	classes := make(map[int]Highlight, len(m.Exact))
	for _, i := range m.Exact {
		if src.ActiveAt(recs[i], at) {
			classes[i] = HighlightSchedule
		} else {
			classes[i] = HighlightFrequency
		}
	}

	for i := range recs {
		if i == m.Insert {
			r.Marker = len(r.Rows)
			r.Rows = append(r.Rows, Row{Record: -1, Highlight: HighlightMarker})
		}
		if i == m.Primary {
			r.Center = len(r.Rows)
		}
		r.Rows = append(r.Rows, Row{Record: i, Highlight: classes[i]})
	}
	if m.Insert == len(recs) {
		r.Marker = len(r.Rows)
		r.Rows = append(r.Rows, Row{Record: -1, Highlight: HighlightMarker})
	}
	if r.Marker >= 0 {
		r.Center = r.Marker
	}
	return r
}
