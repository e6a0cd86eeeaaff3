package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/schedule"
)

// applyTarget reloads the schedule keeping only records whose target area
// contains target. An empty target removes the filter.
func (m *model) applyTarget(target string) tea.Cmd {
	f := m.data.repo.Filters()
	f.Target = target
	return m.setFilters(f)
}

func (m *model) toggleActiveOnly() tea.Cmd {
	f := m.data.repo.Filters()
	f.ActiveOnly = !f.ActiveOnly
	return m.setFilters(f)
}

func (m *model) setFilters(f schedule.Filters) tea.Cmd {
	if err := m.data.repo.SetFilters(f); err != nil {
		return m.startNotice(fmt.Sprintf("Reload failed: %v", err), noticeError, noticeDuration)
	}
	m.clampCursor()
	note, kind := fmt.Sprintf("%s · %d records", filterLabel(f), len(m.data.repo.Displayed())), noticeSuccess
	if sched := m.data.repo.Schedule(); sched != nil && sched.TargetIgnored {
		note, kind = "This schedule has no target column; target filter ignored", noticeWarn
	}
	cmds := []tea.Cmd{m.startNotice(note, kind, noticeDuration)}
	if m.data.view == viewTrack {
		cmds = append(cmds, m.cycle.Sample())
	}
	return tea.Batch(cmds...)
}

func filterLabel(f schedule.Filters) string {
	target := f.Target
	if target == "" {
		target = "any"
	}
	onAir := "off"
	if f.ActiveOnly {
		onAir = "on"
	}
	return fmt.Sprintf("target=%s on-air=%s", target, onAir)
}
