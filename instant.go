package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/logging"
)

const instantLayout = "2006-01-02 15:04"

// applyInstant makes activity windows, and the on-air filter, evaluate at a
// fixed UTC instant. An empty value returns to the live clock.
func (m *model) applyInstant(value string) tea.Cmd {
	var t time.Time
	if value != "" {
		var err error
		t, err = time.ParseInLocation(instantLayout, value, time.UTC)
		if err != nil {
			return m.startNotice(fmt.Sprintf("Invalid instant %q (want %s)", value, instantLayout), noticeWarn, noticeDuration)
		}
	}
	m.setInstant(t)

	note := "Evaluating at the live clock"
	if !t.IsZero() {
		note = "Evaluating at " + t.Format(instantLayout) + " UTC"
		logging.Infof("instant override set to %s", t.Format(time.RFC3339))
	}
	if err := m.reloadIfClockDependent(); err != nil {
		return tea.Batch(m.cycle.Sample(), m.startNotice(fmt.Sprintf("Reload failed: %v", err), noticeError, noticeDuration))
	}
	return tea.Batch(m.cycle.Sample(), m.startNotice(note, noticeInfo, noticeDuration))
}

func (m *model) setInstant(t time.Time) {
	m.data.instant = t
	if t.IsZero() {
		m.cycle.SetInstant(nil)
		m.data.repo.SetClock(m.now)
		return
	}
	at := func() time.Time { return t }
	m.cycle.SetInstant(at)
	m.data.repo.SetClock(at)
}

// instant is the time activity windows are evaluated at.
func (m *model) instant() time.Time {
	if !m.data.instant.IsZero() {
		return m.data.instant
	}
	return m.now().UTC()
}

// reloadIfClockDependent re-applies the on-air filter, which is evaluated at
// load time only.
func (m *model) reloadIfClockDependent() error {
	if !m.data.repo.Filters().ActiveOnly || m.data.repo.Schedule() == nil {
		return nil
	}
	err := m.data.repo.Reload()
	m.clampCursor()
	return err
}
