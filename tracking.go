package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/live"
	"github.com/andareed/siftly-tuner/logging"
)

// enterTrack starts following the receiver. The search term is dropped so the
// marker can land anywhere in the schedule.
func (m *model) enterTrack() tea.Cmd {
	if m.data.view == viewTrack && m.cycle.Running() {
		return nil
	}
	m.data.view = viewTrack
	m.data.repo.SetSearchTerm("")
	m.clampCursor()
	logging.Infof("mode: track")
	return tea.Batch(
		m.cycle.Start(),
		m.startNotice("Tracking the receiver", noticeInfo, noticeDuration),
	)
}

// enterSend stops tracking and clears marker and highlights.
func (m *model) enterSend() tea.Cmd {
	if m.data.view == viewSend {
		return nil
	}
	// Keep the cursor on the same record once the marker row disappears.
	rec := -1
	if rows := m.rows(); m.cursor >= 0 && m.cursor < len(rows) {
		rec = rows[m.cursor].Record
	}
	m.cycle.Stop()
	m.data.view = viewSend
	m.data.render = m.cycle.Render()
	m.data.hasRender = false
	if rec >= 0 {
		m.cursor = rec
	}
	m.clampCursor()
	logging.Infof("mode: send")
	return m.startNotice("Send mode: enter tunes to the selected row", noticeInfo, noticeDuration)
}

// sampleNow forces a redisplay from a fresh sample.
func (m *model) sampleNow() tea.Cmd {
	if !m.cycle.Running() {
		return m.startNotice("Not tracking (t to track)", noticeWarn, noticeDuration)
	}
	return m.cycle.Sample()
}

// handleRender installs a new render instruction and centres on it. Renders
// built against an older displayed set are dropped.
func (m *model) handleRender(r live.Render) {
	if m.data.view != viewTrack {
		return
	}
	if r.Version != m.data.repo.Version() {
		// Built before a reload or filter change; the forced sample that
		// followed it will bring a current render.
		logging.Debugf("render: dropping stale render (version %d, repository %d)", r.Version, m.data.repo.Version())
		return
	}
	m.data.render = r
	m.data.renderVersion = r.Version
	m.data.hasRender = true
	if r.Center >= 0 {
		m.cursor = r.Center
	}
	m.clampCursor()
}

// rows returns what the table shows: the cycle's render while tracking, or the
// displayed records as plain rows.
func (m *model) rows() []live.Row {
	if m.data.view == viewTrack && m.data.hasRender && m.data.renderVersion == m.data.repo.Version() {
		return m.data.render.Rows
	}
	recs := m.data.repo.Displayed()
	rows := make([]live.Row, len(recs))
	for i := range recs {
		rows[i] = live.Row{Record: i}
	}
	return rows
}
