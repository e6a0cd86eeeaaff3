package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-tuner/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	OpenConfirmedMsg   struct{ Path string }
	ExportConfirmedMsg struct{ Path string }
	CanceledMsg        struct{}
)

// PathPrompt asks for a file path. Open and Export differ only in wording and
// in the message sent on confirm.
type PathPrompt struct {
	input   textinput.Model
	visible bool
	hint    string
	lastDir string
	confirm func(path string) tea.Msg
}

func newPathPrompt(prompt, hint, value, lastDir string, confirm func(string) tea.Msg) *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = value
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if value != "" {
		ti.SetValue(value)
	}
	return &PathPrompt{input: ti, visible: true, hint: hint, lastDir: lastDir, confirm: confirm}
}

// NewOpenDialog asks for a schedule file to load.
func NewOpenDialog(current, lastDir string) *PathPrompt {
	return newPathPrompt("Open schedule: ", "enter to load • esc to cancel", current, lastDir,
		func(p string) tea.Msg { return OpenConfirmedMsg{Path: p} })
}

// NewExportDialog asks where to write the displayed rows.
func NewExportDialog(defaultName, lastDir string) *PathPrompt {
	return newPathPrompt("Export as: ", "enter to export • esc to cancel", defaultName, lastDir,
		func(p string) tea.Msg { return ExportConfirmedMsg{Path: p} })
}

func (d *PathPrompt) Init() tea.Cmd { return d.input.Focus() }

func (d *PathPrompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			path := d.resolve()
			if path == "" {
				return d, nil
			}
			logging.Debugf("dialog: %s%s", d.input.Prompt, path)
			return d, func() tea.Msg { return d.confirm(path) }
		case "esc":
			return d, func() tea.Msg { return CanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve falls back to the placeholder and places bare names in lastDir.
func (d *PathPrompt) resolve() string {
	val := strings.TrimSpace(d.input.Value())
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		val = filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d *PathPrompt) View() string {
	if !d.visible {
		return ""
	}
	help := lipgloss.NewStyle().Faint(true).Render(d.hint)
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *PathPrompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *PathPrompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *PathPrompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *PathPrompt) Blur()           { d.input.Blur() }
func (d *PathPrompt) IsVisible() bool { return d.visible }
