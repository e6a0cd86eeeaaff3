package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayColor = "236"

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color(overlayColor)).
	Padding(1, 2).
	Width(60)

// Overlay centres a dialog on a width x height backdrop.
func Overlay(dialog string, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayColor)),
	)
}
