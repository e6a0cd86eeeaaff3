package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-tuner/dialogs"
	"github.com/andareed/siftly-tuner/live"
	"github.com/andareed/siftly-tuner/logging"
	"github.com/andareed/siftly-tuner/schedule"
)

// gutterWidth is the pill marker plus a space.
const gutterWidth = 2

func (m *model) headerView() string {
	sched := m.data.repo.Schedule()
	if sched == nil {
		return headerStyle.Render("")
	}
	text := m.fitLine(sched.FormatHeader())
	return headerStyle.Render(strings.Repeat(" ", gutterWidth) + text)
}

// fitLine applies the horizontal scroll offset and cuts s to the table width.
func (m *model) fitLine(s string) string {
	s = dropCells(s, m.ui.xOffset)
	w := max(m.viewport.Width-gutterWidth, 0)
	return truncate.StringWithTail(s, uint(w), "…")
}

// dropCells removes the first n display cells of a plain string.
func dropCells(s string, n int) string {
	if n <= 0 {
		return s
	}
	for i, r := range s {
		if n <= 0 {
			return s[i:]
		}
		n -= runewidth.RuneWidth(r)
	}
	return ""
}

// footerView renders the 2-line footer. width is the rendered table width.
func (m *model) footerView(width int) string {
	st := footerState{
		Mode:        m.data.view.String(),
		FileName:    m.data.repo.Path(),
		FilterLabel: m.filterSummary(),
		Frequency:   m.frequencyLabel(),
		Row:         m.cursor + 1,
		TotalRows:   len(m.rows()),
		Legend:      legend(Keys.ShortHelp()),
	}
	if m.ui.mode == modeCommand {
		st.Mode = commandLabel(m.ui.command.cmd)
		st.ModeInput = m.activeCommandLine()
	}
	if st.TotalRows == 0 {
		st.Row = 0
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d v=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd, m.data.repo.Version(),
		)
	}
	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) filterSummary() string {
	s := filterLabel(m.data.repo.Filters())
	if term := m.data.repo.SearchTerm(); term != "" {
		s += " search=" + term
	}
	if !m.data.instant.IsZero() {
		s += " @" + m.data.instant.Format(instantLayout)
	}
	return s
}

func (m *model) frequencyLabel() string {
	if m.data.view != viewTrack {
		return ""
	}
	if !m.data.hasRender {
		return "… kHz"
	}
	if !m.data.render.Match.HasTarget {
		return "no rig"
	}
	return schedule.FormatFrequency(m.data.render.Match.TargetKHz) + " kHz"
}

func legend(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "(" + strings.Join(parts, " · ") + ")"
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.activeDialog.View(), m.terminalWidth, m.terminalHeight)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		bordered,
		m.footerView(contentW),
	))
}

// renderRowAt renders row i of the table including its gutter.
func (m *model) renderRowAt(i int, rows []live.Row) (string, bool) {
	if i < 0 || i >= len(rows) {
		return "", false
	}
	row := rows[i]
	selected := i == m.cursor
	width := max(m.viewport.Width-gutterWidth, 0)

	if row.IsMarker() {
		text := "---- " + schedule.FormatFrequency(m.data.render.Match.TargetKHz)
		cursor := " "
		if selected {
			cursor = ">"
		}
		return cursor + " " + markerRowStyle.Render(m.fitLine(text)), true
	}

	recs := m.data.repo.Displayed()
	sched := m.data.repo.Schedule()
	if sched == nil || row.Record >= len(recs) {
		return "", false
	}
	text := runewidth.FillRight(m.fitLine(sched.FormatRow(recs[row.Record])), width)

	fg := lipgloss.Color(rowTextFGColor)
	gutter := defaultMarker
	switch row.Highlight {
	case live.HighlightFrequency:
		fg = lipgloss.Color(freqMatchFGColor)
		gutter = freqMarker.Render(pillMarker)
	case live.HighlightSchedule:
		fg = lipgloss.Color(schedMatchFGColor)
		gutter = schedMarker.Render(pillMarker)
	}

	bg := lipgloss.Color("")
	rowBgStyle := rowStyle
	if selected {
		bg = lipgloss.Color(rowSelectedBGColor)
		rowBgStyle = rowSelectedStyle
		if row.Highlight == live.HighlightNone {
			fg = lipgloss.Color(rowSelectedTextFGColor)
		}
	}
	rowPrefix := bgSeq(bg) + fgSeq(fg)
	rowSuffix := termenv.CSI + "0m"

	if term := m.data.repo.SearchTerm(); term != "" {
		text = restoreRowStyleAfterReset(highlightMatches(text, term), rowPrefix)
	}
	return gutter + rowBgStyle.Render(" ") + rowPrefix + text + rowSuffix, true
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	// Lower-casing can change byte lengths; give up on highlighting then.
	if len(lowerText) != len(text) {
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

// refreshView re-renders the table into the viewport.
func (m *model) refreshView() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderViewport())
}

func (m *model) renderViewport() string {
	rows := m.rows()
	if len(rows) == 0 {
		if m.data.repo.Schedule() == nil {
			return "no schedule loaded (o to open)"
		}
		return "no rows"
	}
	m.clampCursor()

	start, end := computeVisibleRows(m.cursor, len(rows), m.viewport.Height)
	m.ui.visibleStart, m.ui.visibleEnd = start, end
	m.pageRowSize = max(end-start, 1)

	var b strings.Builder
	for i := start; i < end; i++ {
		line, ok := m.renderRowAt(i, rows)
		if !ok {
			continue
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// computeVisibleRows returns the half-open window [start, end) of n rows that
// keeps cursor centred in height lines.
func computeVisibleRows(cursor, n, height int) (int, int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}
