package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"github.com/andareed/siftly-tuner/logging"
)

// reloadMsg asks the model to re-read the schedule file.
type reloadMsg struct{}

// newReloader schedules a reloadMsg on spec. send is normally
// (*tea.Program).Send. The returned scheduler is not started.
func newReloader(spec string, send func(tea.Msg)) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		logging.Debugf("reload: cron fired (%s)", spec)
		send(reloadMsg{})
	}); err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}
	return c, nil
}

func (m *model) handleReload() tea.Cmd {
	if m.data.repo.Schedule() == nil {
		return nil
	}
	if err := m.data.repo.Reload(); err != nil {
		return m.startNotice(fmt.Sprintf("Reload failed: %v", err), noticeError, noticeDuration)
	}
	m.clampCursor()
	sched := m.data.repo.Schedule()
	logging.Infof("reload: %d records", len(sched.Records))
	return tea.Batch(
		m.cycle.Sample(),
		m.startNotice(fmt.Sprintf("Reloaded %d records", len(sched.Records)), noticePlain, noticeDuration),
	)
}
