package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tuner/logging"
)

// applySearch sets the display filter. Searching only makes sense while the
// cursor is not being driven by the receiver.
func (m *model) applySearch(term string) tea.Cmd {
	if m.data.view == viewTrack {
		return m.startNotice("Search is available in send mode (v)", noticeWarn, noticeDuration)
	}
	if strings.TrimSpace(term) == "" {
		return m.clearSearch()
	}
	m.data.repo.SetSearchTerm(term)
	m.clampCursor()
	n := len(m.data.repo.Displayed())
	logging.Debugf("search %q: %d rows", term, n)
	return m.startNotice(fmt.Sprintf("%d rows match %q", n, term), noticeInfo, noticeDuration)
}

func (m *model) clearSearch() tea.Cmd {
	if m.data.repo.SearchTerm() == "" {
		return nil
	}
	m.data.repo.SetSearchTerm("")
	m.clampCursor()
	return m.startNotice("Search cleared", noticeInfo, noticeDuration)
}
