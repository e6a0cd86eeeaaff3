package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/logging"
	"github.com/andareed/siftly-tuner/schedule"
)

func (m *model) jumpToStart() {
	if len(m.rows()) == 0 {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	m.cursor = len(m.rows()) - 1
	m.clampCursor()
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *model) pageDown() {
	m.moveCursor(max(1, m.pageRowSize))
}

func (m *model) pageUp() {
	m.moveCursor(-max(1, m.pageRowSize))
}

func (m *model) clampCursor() {
	n := len(m.rows())
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// gotoFrequency puts the cursor on the first record within tolerance of khz,
// or where khz would be inserted. In send mode the receiver is tuned too.
func (m *model) gotoFrequency(khz float64) tea.Cmd {
	recs := m.data.repo.Displayed()
	res := schedule.Match(recs, khz, true)

	target := res.Primary
	if !res.Matched() {
		target = min(res.Insert, len(recs)-1)
	}
	logging.Debugf("goto %.2f kHz: primary=%d insert=%d", khz, res.Primary, res.Insert)
	if target >= 0 {
		m.cursor = m.rowIndexOf(target)
	}

	if m.data.view == viewSend {
		return m.tuneTo(khz)
	}
	if !res.Matched() {
		return m.startNotice(fmt.Sprintf("No record at %s kHz", schedule.FormatFrequency(khz)), noticeInfo, noticeDuration)
	}
	return nil
}

// rowIndexOf maps a displayed-record index to its row index.
func (m *model) rowIndexOf(record int) int {
	for i, r := range m.rows() {
		if r.Record == record {
			return i
		}
	}
	return 0
}
