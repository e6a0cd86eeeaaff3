package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/andareed/siftly-tuner/logging"
)

// ErrNotLoaded is returned by Reload before any file was loaded.
var ErrNotLoaded = errors.New("no schedule loaded")

// Repository owns the loaded schedule and every filter applied to it. It is
// not safe for concurrent use; callers drive it from a single event loop.
type Repository struct {
	fs  afero.Fs
	now func() time.Time

	sched   *Schedule
	path    string
	format  *Format // nil means detect on every load
	filters Filters

	search    string
	displayed []Record
	version   uint64
}

// NewRepository returns an empty repository reading files from fs.
func NewRepository(fs afero.Fs) *Repository {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Repository{fs: fs, now: time.Now}
}

// SetClock replaces the clock used for the active-only predicate.
func (r *Repository) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.now = now
}

// Load parses path with format f (nil detects it) and the given filters and
// replaces the current schedule. On failure the previous state is untouched.
func (r *Repository) Load(path string, f *Format, filters Filters) error {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return fmt.Errorf("read schedule: %w", err)
	}
	text := string(data)

	format := f
	if format == nil {
		format = DetectFormat(text)
	}
	sched, err := Parse(text, format, filters, r.now())
	if err != nil {
		logging.Warnf("schedule: load %s failed: %v", path, err)
		return fmt.Errorf("load %s: %w", path, err)
	}

	r.sched = sched
	r.path = path
	r.format = f
	r.filters = filters
	r.rebuild()
	logging.Infof("schedule: loaded %s (%d records, format=%s, active-only=%v, target=%q)",
		path, len(sched.Records), format.Name, filters.ActiveOnly, filters.Target)
	return nil
}

// Reload re-reads the current file with the current filters.
func (r *Repository) Reload() error {
	if r.sched == nil {
		return ErrNotLoaded
	}
	return r.Load(r.path, r.format, r.filters)
}

// SetFilters reloads the current file with new load-time filters. Before the
// first load it only records them.
func (r *Repository) SetFilters(filters Filters) error {
	if r.sched == nil {
		r.filters = filters
		return nil
	}
	return r.Load(r.path, r.format, filters)
}

// Filters returns the load-time filters in effect.
func (r *Repository) Filters() Filters {
	return r.filters
}

// SetSearchTerm changes the display filter without touching loaded records.
func (r *Repository) SetSearchTerm(term string) {
	if term == r.search {
		return
	}
	r.search = term
	r.rebuild()
}

// SearchTerm returns the display filter.
func (r *Repository) SearchTerm() string {
	return r.search
}

// Displayed returns the loaded records matching the search term, in file
// order. The slice is shared; callers must not modify it.
func (r *Repository) Displayed() []Record {
	return r.displayed
}

// Schedule returns the loaded schedule, or nil.
func (r *Repository) Schedule() *Schedule {
	return r.sched
}

// Path returns the loaded file path.
func (r *Repository) Path() string {
	return r.path
}

// Version changes whenever the displayed set is rebuilt.
func (r *Repository) Version() uint64 {
	return r.version
}

// ActiveAt evaluates a displayed record's activity window.
func (r *Repository) ActiveAt(rec Record, at time.Time) bool {
	if r.sched == nil {
		return false
	}
	return r.sched.ActiveAt(rec, at)
}

func (r *Repository) rebuild() {
	r.version++
	if r.sched == nil {
		r.displayed = nil
		return
	}
	term := strings.ToLower(r.search)
	if term == "" {
		r.displayed = r.sched.Records
		return
	}
	out := make([]Record, 0, len(r.sched.Records))
	for _, rec := range r.sched.Records {
		if r.matchesSearch(rec, term) {
			out = append(out, rec)
		}
	}
	r.displayed = out
}

func (r *Repository) matchesSearch(rec Record, term string) bool {
	if r.sched.Format != nil && r.sched.Format.searchRow {
		return strings.Contains(strings.ToLower(r.sched.FormatRow(rec)), term)
	}
	for _, c := range r.sched.Columns {
		if strings.Contains(strings.ToLower(rec.Value(c.Name)), term) {
			return true
		}
	}
	return false
}
