package dialogs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help lists the key bindings in columns.
type Help struct {
	visible bool
	keys    help.KeyMap
	model   help.Model
}

// NewHelpDialog creates a help dialog for keys.
func NewHelpDialog(keys help.KeyMap) *Help {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "    "
	return &Help{visible: true, keys: keys, model: h}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, func() tea.Msg { return CanceledMsg{} }
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}
	hint := lipgloss.NewStyle().Faint(true).Render("enter/esc to return")
	return boxStyle.Width(0).Render(fmt.Sprintf("%s\n\n%s", d.model.View(d.keys), hint))
}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) Focus() tea.Cmd  { return nil }
func (d *Help) Blur()           {}
func (d *Help) IsVisible() bool { return d.visible }
