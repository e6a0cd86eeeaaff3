package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal shown over the table. While one is visible it receives
// every key; it reports the outcome with a message.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
