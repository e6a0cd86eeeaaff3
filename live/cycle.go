// Package live drives the periodic refresh that follows the receiver's
// frequency through the displayed schedule.
//
// A Cycle is a Bubble Tea component: Start and Sample return commands, and
// Update consumes the messages those commands produce. Each message carries
// the cycle's id and tag, so Stop invalidates everything still in flight.
package live

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/logging"
	"github.com/andareed/siftly-tuner/schedule"
)

// DefaultInterval is the nominal tick period.
const DefaultInterval = time.Second

// ChangeThresholdHz is the smallest frequency move that triggers a redisplay.
const ChangeThresholdHz = 10.0

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// Sampler reads the live frequency. ok=false means no sample is available.
type Sampler interface {
	FrequencyHz() (hz float64, ok bool)
}

// Source is the displayed schedule the cycle matches against.
type Source interface {
	Displayed() []schedule.Record
	Version() uint64
	ActiveAt(rec schedule.Record, at time.Time) bool
}

// TickMsg asks the cycle to take its next scheduled sample.
type TickMsg struct {
	ID  int
	tag int
}

// SampleMsg carries one frequency sample back into the event loop.
type SampleMsg struct {
	ID        int
	tag       int
	Hz        float64
	OK        bool
	force     bool
	scheduled bool
}

// RenderMsg is emitted by Update when the display has to change.
type RenderMsg struct {
	Render Render
}

// Cycle is the live-tracking task.
type Cycle struct {
	id       int
	tag      int
	running  bool
	interval time.Duration
	sampler  Sampler
	source   Source
	now      func() time.Time
	at       func() time.Time

	hasLast    bool
	lastOK     bool
	lastHz     float64
	lastMinute time.Time
	lastSource uint64

	render Render
}

// New returns a stopped cycle.
func New(sampler Sampler, source Source, interval time.Duration) *Cycle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Cycle{
		id:       nextID(),
		interval: interval,
		sampler:  sampler,
		source:   source,
		now:      time.Now,
		render:   emptyRender(),
	}
}

// SetClock replaces the wall clock, used for minute-change detection.
func (c *Cycle) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	c.now = now
}

// SetInstant makes activity windows evaluate at a fixed instant instead of
// the wall clock. nil returns to the wall clock.
func (c *Cycle) SetInstant(at func() time.Time) {
	c.at = at
}

// Instant is the time activity windows are evaluated at.
func (c *Cycle) Instant() time.Time {
	if c.at != nil {
		return c.at()
	}
	return c.now()
}

// ID identifies the cycle in messages.
func (c *Cycle) ID() int { return c.id }

// Running reports whether ticks are being scheduled.
func (c *Cycle) Running() bool { return c.running }

// Render returns the latest render instruction.
func (c *Cycle) Render() Render { return c.render }

// Start begins tracking with an immediate forced sample.
func (c *Cycle) Start() tea.Cmd {
	c.running = true
	c.tag++
	c.hasLast = false
	return c.sample(true, true)
}

// Stop cancels pending ticks and clears marker and highlights. Messages
// produced before Stop are ignored by Update.
func (c *Cycle) Stop() {
	c.running = false
	c.tag++
	c.hasLast = false
	c.render = emptyRender()
}

// Sample requests an out-of-schedule forced sample, e.g. after a filter
// change. It does not schedule another tick.
func (c *Cycle) Sample() tea.Cmd {
	if !c.running {
		return nil
	}
	return c.sample(true, false)
}

func (c *Cycle) sample(force, scheduled bool) tea.Cmd {
	id, tag, s := c.id, c.tag, c.sampler
	return func() tea.Msg {
		hz, ok := s.FrequencyHz()
		return SampleMsg{ID: id, tag: tag, Hz: hz, OK: ok, force: force, scheduled: scheduled}
	}
}

func (c *Cycle) tick() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}

// Update handles the cycle's own messages. It returns a RenderMsg command
// when the display changed, batched with the next tick.
func (c *Cycle) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		if !c.current(msg.ID, msg.tag) {
			return nil
		}
		return c.sample(false, true)

	case SampleMsg:
		if !c.current(msg.ID, msg.tag) {
			return nil
		}
		var cmds []tea.Cmd
		if r, changed := c.Observe(msg.Hz, msg.OK, msg.force); changed {
			cmds = append(cmds, func() tea.Msg { return RenderMsg{Render: r} })
		}
		if msg.scheduled {
			cmds = append(cmds, c.tick())
		}
		return tea.Batch(cmds...)
	}
	return nil
}

func (c *Cycle) current(id, tag int) bool {
	return c.running && id == c.id && tag == c.tag
}

// Observe runs one refresh step for a sample. It reports changed=false, and
// the previous render, when nothing requires a redisplay.
func (c *Cycle) Observe(hz float64, ok bool, force bool) (Render, bool) {
	now := c.now()
	minute := now.Truncate(time.Minute)
	version := c.source.Version()

	needed := force || !c.hasLast ||
		version != c.lastSource ||
		ok != c.lastOK ||
		(ok && math.Abs(hz-c.lastHz) >= ChangeThresholdHz) ||
		!minute.Equal(c.lastMinute)

	c.hasLast = true
	c.lastOK = ok
	c.lastHz = hz
	c.lastMinute = minute
	c.lastSource = version

	if !needed {
		return c.render, false
	}

	c.render = Build(c.source, hz/1000, ok, c.Instant())
	if ok && !c.render.Match.Matched() {
		logging.Debugf("live: no exact match for %.2f kHz, nearest=%d marker at %d",
			hz/1000, c.render.Match.Nearest, c.render.Marker)
	}
	return c.render, true
}
