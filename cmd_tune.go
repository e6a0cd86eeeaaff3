package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/schedule"
)

type tunedMsg struct {
	khz float64
	err error
}

// tuneTo sets the receiver frequency off the event loop.
func (m *model) tuneTo(khz float64) tea.Cmd {
	if m.tuner == nil {
		return m.startNotice("No tuner configured", noticeWarn, noticeDuration)
	}
	t := m.tuner
	return func() tea.Msg {
		return tunedMsg{khz: khz, err: t.SetFrequencyHz(khz * 1000)}
	}
}

// tuneSelected tunes to the record under the cursor.
func (m *model) tuneSelected() tea.Cmd {
	rec, ok := m.selectedRecord()
	if !ok {
		return nil
	}
	return m.tuneTo(rec.Frequency)
}

func (m *model) handleTuned(msg tunedMsg) tea.Cmd {
	if msg.err != nil {
		return m.startNotice(fmt.Sprintf("Tune failed: %v", msg.err), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Tuned to %s kHz", schedule.FormatFrequency(msg.khz)), noticeSuccess, noticeDuration)
}
