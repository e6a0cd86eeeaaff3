package live

import (
	"testing"
	"time"

	"github.com/andareed/siftly-tuner/schedule"
)

type fakeSampler struct {
	hz    float64
	ok    bool
	calls int
}

func (f *fakeSampler) FrequencyHz() (float64, bool) {
	f.calls++
	return f.hz, f.ok
}

// fakeSource serves a fixed record set; records listed in active are on air.
type fakeSource struct {
	recs    []schedule.Record
	active  map[float64]bool
	version uint64
}

func (f *fakeSource) Displayed() []schedule.Record { return f.recs }
func (f *fakeSource) Version() uint64              { return f.version }
func (f *fakeSource) ActiveAt(r schedule.Record, _ time.Time) bool {
	return f.active[r.Frequency]
}

func newSource(freqs ...float64) *fakeSource {
	s := &fakeSource{active: map[float64]bool{}, version: 1}
	for _, f := range freqs {
		s.recs = append(s.recs, schedule.Record{Frequency: f})
	}
	return s
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestCycle(s Sampler, src Source) (*Cycle, *clock) {
	clk := &clock{t: time.Date(2025, time.March, 3, 12, 0, 10, 0, time.UTC)}
	c := New(s, src, time.Second)
	c.SetClock(clk.now)
	return c, clk
}

func TestObserveRefreshDecision(t *testing.T) {
	src := newSource(9400, 9650, 12000)
	c, clk := newTestCycle(&fakeSampler{}, src)

	if _, changed := c.Observe(9_400_000, true, false); !changed {
		t.Fatal("first sample must redisplay")
	}
	if _, changed := c.Observe(9_400_005, true, false); changed {
		t.Error("5 Hz move should not redisplay")
	}
	if _, changed := c.Observe(9_400_015, true, false); !changed {
		t.Error("10 Hz move from the last sample should redisplay")
	}
	if _, changed := c.Observe(9_400_015, true, true); !changed {
		t.Error("forced sample must redisplay")
	}
	if _, changed := c.Observe(9_400_015, false, false); !changed {
		t.Error("losing the sample should redisplay")
	}
	if _, changed := c.Observe(0, false, false); changed {
		t.Error("still no sample should not redisplay")
	}
	if _, changed := c.Observe(9_400_015, true, false); !changed {
		t.Error("regaining the sample should redisplay")
	}

	clk.t = clk.t.Add(30 * time.Second)
	if _, changed := c.Observe(9_400_015, true, false); changed {
		t.Error("same minute should not redisplay")
	}
	clk.t = clk.t.Add(30 * time.Second)
	if _, changed := c.Observe(9_400_015, true, false); !changed {
		t.Error("minute change should redisplay")
	}

	src.version++
	if _, changed := c.Observe(9_400_015, true, false); !changed {
		t.Error("a rebuilt displayed set should redisplay")
	}
}

func TestBuildMarker(t *testing.T) {
	src := newSource(9400, 9650, 12000)

	r := Build(src, 10000, true, time.Now())
	if r.Match.Matched() {
		t.Fatal("10000 kHz should not match")
	}
	if r.Marker != 2 || !r.Rows[2].IsMarker() || r.Rows[2].Highlight != HighlightMarker {
		t.Fatalf("marker at %d, want 2: %+v", r.Marker, r.Rows)
	}
	if r.Center != 2 {
		t.Errorf("center = %d, want the marker row", r.Center)
	}
	if r.Version != src.version {
		t.Errorf("render version = %d, want the source's %d", r.Version, src.version)
	}
	if len(r.Rows) != 4 || r.Rows[3].Record != 2 {
		t.Fatalf("rows = %+v", r.Rows)
	}

	r = Build(src, 13000, true, time.Now())
	if r.Marker != 3 || len(r.Rows) != 4 {
		t.Fatalf("marker past the end at %d, rows %d", r.Marker, len(r.Rows))
	}

	r = Build(src, 13000, false, time.Now())
	if r.HasMarker() || len(r.Rows) != 3 || r.Center != -1 {
		t.Fatalf("no sample should give a plain render: %+v", r)
	}
}

func TestBuildClassifiesMatches(t *testing.T) {
	src := newSource(6005, 6005, 7000)
	src.active[6005] = false
	r := Build(src, 6005, true, time.Now())
	if r.HasMarker() {
		t.Fatal("exact match should not get a marker")
	}
	if r.Rows[0].Highlight != HighlightFrequency || r.Rows[1].Highlight != HighlightFrequency {
		t.Errorf("off-air matches should be frequency highlights: %+v", r.Rows)
	}
	if r.Rows[2].Highlight != HighlightNone {
		t.Errorf("non-matching row highlighted: %v", r.Rows[2].Highlight)
	}
	if r.Center != 0 {
		t.Errorf("center = %d, want the first match", r.Center)
	}

	src.active[6005] = true
	r = Build(src, 6005.004, true, time.Now())
	if r.Rows[0].Highlight != HighlightSchedule {
		t.Errorf("on-air match should be a schedule highlight, got %v", r.Rows[0].Highlight)
	}
}

func TestMarkerMovesWithFrequency(t *testing.T) {
	src := newSource(9400, 9650, 12000)
	c, _ := newTestCycle(&fakeSampler{}, src)

	r, _ := c.Observe(10_000_000, true, false)
	if r.Marker != 2 {
		t.Fatalf("marker at %d, want 2", r.Marker)
	}
	r, _ = c.Observe(9_500_000, true, false)
	markers := 0
	for _, row := range r.Rows {
		if row.IsMarker() {
			markers++
		}
	}
	if markers != 1 || r.Marker != 1 {
		t.Fatalf("expected one marker at 1, got %d markers at %d", markers, r.Marker)
	}
	r, _ = c.Observe(9_650_000, true, false)
	if r.HasMarker() {
		t.Fatal("tuning onto a record should remove the marker")
	}
}

func TestInstantOverride(t *testing.T) {
	src := newSource(6005)
	c, clk := newTestCycle(&fakeSampler{}, src)
	if !c.Instant().Equal(clk.t) {
		t.Fatal("instant should follow the clock by default")
	}
	fixed := time.Date(2024, time.December, 25, 6, 0, 0, 0, time.UTC)
	c.SetInstant(func() time.Time { return fixed })
	if !c.Instant().Equal(fixed) {
		t.Fatal("instant override not applied")
	}
	c.SetInstant(nil)
	if !c.Instant().Equal(clk.t) {
		t.Fatal("instant should return to the clock")
	}
}

func TestCycleMessages(t *testing.T) {
	sampler := &fakeSampler{hz: 10_000_000, ok: true}
	src := newSource(9400, 9650, 12000)
	c, _ := newTestCycle(sampler, src)

	if c.Sample() != nil {
		t.Fatal("Sample on a stopped cycle should be nil")
	}

	cmd := c.Start()
	if !c.Running() || cmd == nil {
		t.Fatal("Start should run and return a sample command")
	}
	msg := cmd()
	sm, ok := msg.(SampleMsg)
	if !ok || sm.ID != c.ID() || sm.Hz != 10_000_000 || !sm.OK {
		t.Fatalf("unexpected start message %#v", msg)
	}

	next := c.Update(sm)
	if next == nil {
		t.Fatal("forced sample should produce a render and a tick")
	}
	if !c.Render().HasMarker() {
		t.Fatal("render should carry a marker for 10000 kHz")
	}

	// A sample from a different cycle is ignored.
	other := sm
	other.ID = c.ID() + 1000
	if c.Update(other) != nil {
		t.Error("foreign sample should be ignored")
	}

	c.Stop()
	if c.Running() {
		t.Fatal("Stop should stop")
	}
	if c.Render().HasMarker() || len(c.Render().Rows) != 0 {
		t.Error("Stop should clear marker and highlights")
	}
	if c.Update(sm) != nil {
		t.Error("sample issued before Stop should be ignored")
	}
	if c.Update(TickMsg{ID: c.ID(), tag: sm.tag}) != nil {
		t.Error("tick issued before Stop should be ignored")
	}

	// Restarting invalidates samples from the earlier run as well.
	c.Start()
	if c.Update(sm) != nil {
		t.Error("sample from a previous run should be ignored")
	}
}

func TestTickTakesUnforcedSample(t *testing.T) {
	sampler := &fakeSampler{hz: 9_400_000, ok: true}
	c, _ := newTestCycle(sampler, newSource(9400))
	start := c.Start()
	first := start().(SampleMsg)
	c.Update(first)

	cmd := c.Update(TickMsg{ID: c.ID(), tag: first.tag})
	if cmd == nil {
		t.Fatal("tick should sample")
	}
	sm := cmd().(SampleMsg)
	if sm.force || !sm.scheduled {
		t.Fatalf("tick sample should be scheduled and unforced: %#v", sm)
	}
	if c.Update(sm) == nil {
		t.Fatal("scheduled sample should schedule the next tick")
	}
	if sampler.calls != 2 {
		t.Errorf("sampler called %d times, want 2", sampler.calls)
	}
}
