package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/andareed/siftly-tuner/clipboard"
	"github.com/andareed/siftly-tuner/dialogs"
	"github.com/andareed/siftly-tuner/live"
	"github.com/andareed/siftly-tuner/logging"
	"github.com/andareed/siftly-tuner/schedule"
	"github.com/andareed/siftly-tuner/tuner"
)

type model struct {
	data  dataState
	ui    uiState
	cycle *live.Cycle
	tuner tuner.Tuner
	fs    afero.Fs
	now   func() time.Time

	// format is the layout used when opening files; nil detects it.
	format *schedule.Format

	viewport       viewport.Model
	ready          bool
	cursor         int // index into rows()
	pageRowSize    int
	terminalWidth  int
	terminalHeight int
	activeDialog   dialogs.Dialog
	lastDir        string
}

func newModel(repo *schedule.Repository, t tuner.Tuner, fs afero.Fs, format *schedule.Format, interval time.Duration) *model {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	m := &model{
		data:   dataState{repo: repo, view: viewTrack},
		cycle:  live.New(t, repo, interval),
		tuner:  t,
		fs:     fs,
		now:    time.Now,
		format: format,
	}
	if p := repo.Path(); p != "" {
		m.lastDir = filepath.Dir(p)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-tuner: initialised (%d records)", len(m.data.repo.Displayed()))
	return m.enterTrack()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refreshView()
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		// margins (2x2), table border (2), header (1), footer (2)
		m.viewport = viewport.New(max(msg.Width-6, 10), max(msg.Height-7, 3))
		m.ready = true
		return nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return nil

	case live.TickMsg, live.SampleMsg:
		return m.cycle.Update(msg)

	case live.RenderMsg:
		m.handleRender(msg.Render)
		return nil

	case tunedMsg:
		return m.handleTuned(msg)

	case reloadMsg:
		return m.handleReload()

	case dialogs.OpenConfirmedMsg:
		m.closeDialog()
		return m.openFile(msg.Path)

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m.exportTo(msg.Path)

	case dialogs.CanceledMsg:
		m.closeDialog()
		return nil

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return cmd
		}
		if m.ui.mode == modeCommand {
			_, cmd := m.handleCommandKey(msg)
			return cmd
		}
		return m.handleViewKey(msg)
	}
	return nil
}

func (m *model) handleViewKey(msg tea.KeyMsg) tea.Cmd {
	k := Keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.TrackMode):
		return m.enterTrack()
	case key.Matches(msg, k.SendMode):
		return m.enterSend()
	case key.Matches(msg, k.Tune):
		if m.data.view != viewSend {
			return m.startNotice("Switch to send mode (v) to tune", noticeWarn, noticeDuration)
		}
		return m.tuneSelected()
	case key.Matches(msg, k.SampleNow):
		return m.sampleNow()

	case key.Matches(msg, k.Search):
		if m.data.view != viewSend {
			return m.startNotice("Search is available in send mode (v)", noticeWarn, noticeDuration)
		}
		m.enterCommand(CommandFromPrefix('/'), m.data.repo.SearchTerm())
	case key.Matches(msg, k.ClearSearch):
		return m.clearSearch()
	case key.Matches(msg, k.Target):
		m.enterCommand(CmdTarget, m.data.repo.Filters().Target)
	case key.Matches(msg, k.ActiveOnly):
		return m.toggleActiveOnly()
	case key.Matches(msg, k.GotoFreq):
		m.enterCommand(CommandFromPrefix(':'), "")
	case key.Matches(msg, k.AtInstant):
		buf := ""
		if !m.data.instant.IsZero() {
			buf = m.data.instant.Format(instantLayout)
		}
		m.enterCommand(CommandFromPrefix('@'), buf)

	case key.Matches(msg, k.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, k.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, k.PageDown):
		m.pageDown()
	case key.Matches(msg, k.PageUp):
		m.pageUp()
	case key.Matches(msg, k.Top):
		m.jumpToStart()
	case key.Matches(msg, k.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, k.ScrollLeft):
		m.ui.xOffset = max(m.ui.xOffset-4, 0)
	case key.Matches(msg, k.ScrollRight):
		m.ui.xOffset += 4

	case key.Matches(msg, k.OpenHelp):
		return m.showDialog(dialogs.NewHelpDialog(Keys))
	case key.Matches(msg, k.OpenFile):
		return m.showDialog(dialogs.NewOpenDialog(m.data.repo.Path(), m.lastDir))
	case key.Matches(msg, k.Export):
		return m.showDialog(dialogs.NewExportDialog(m.defaultExportName(), m.lastDir))
	case key.Matches(msg, k.CopyRow):
		return m.copySelected()
	}
	return nil
}

func (m *model) showDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

// selectedRecord returns the record under the cursor; the marker row has none.
func (m *model) selectedRecord() (schedule.Record, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) || rows[m.cursor].IsMarker() {
		return schedule.Record{}, false
	}
	recs := m.data.repo.Displayed()
	i := rows[m.cursor].Record
	if i >= len(recs) {
		return schedule.Record{}, false
	}
	return recs[i], true
}

func (m *model) openFile(path string) tea.Cmd {
	repo := m.data.repo
	if err := repo.Load(path, m.format, repo.Filters()); err != nil {
		return m.startNotice(fmt.Sprintf("Open failed: %v", err), noticeError, noticeDuration)
	}
	m.lastDir = filepath.Dir(path)
	m.cursor = 0
	sched := repo.Schedule()
	note := fmt.Sprintf("Loaded %d records from %s", len(sched.Records), filepath.Base(path))
	if sched.Skipped > 0 {
		note += fmt.Sprintf(" (%d lines skipped)", sched.Skipped)
	}
	if sched.TargetIgnored {
		note += ", no target column"
	}
	return tea.Batch(m.cycle.Sample(), m.startNotice(note, noticeSuccess, noticeDuration))
}

func (m *model) defaultExportName() string {
	base := filepath.Base(m.data.repo.Path())
	if base == "." || base == string(filepath.Separator) {
		base = "schedule"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "-export.csv"
}

func (m *model) exportTo(path string) tea.Cmd {
	recs := m.data.repo.Displayed()
	if err := exportRecords(m.fs, path, m.data.repo.Schedule(), recs, m.instant()); err != nil {
		logging.Errorf("export %s: %v", path, err)
		return m.startNotice(fmt.Sprintf("Export failed: %v", err), noticeError, noticeDuration)
	}
	m.lastDir = filepath.Dir(path)
	return m.startNotice(fmt.Sprintf("Exported %d rows to %s", len(recs), path), noticeSuccess, noticeDuration)
}

func (m *model) copySelected() tea.Cmd {
	rec, ok := m.selectedRecord()
	if !ok {
		return m.startNotice("Nothing to copy", noticeWarn, noticeDuration)
	}
	text := strings.Join(m.data.repo.Schedule().Fields(rec), ";")
	method, err := clipboard.Copy(text)
	if err != nil {
		return m.startNotice(fmt.Sprintf("Copy failed: %v", err), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %s kHz row (%s)", schedule.FormatFrequency(rec.Frequency), method), noticeSuccess, noticeDuration)
}
