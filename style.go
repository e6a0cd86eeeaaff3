package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"

	freqMatchFGColor  = "#f5d742" // yellow
	schedMatchFGColor = "#5fd75f" // green
	markerFGColor     = "#f5d742"
	markerBGColor     = "#000000"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true).Bold(true)
	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	// Gutter markers.
	freqMarker    = lipgloss.NewStyle().Foreground(lipgloss.Color(freqMatchFGColor))
	schedMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color(schedMatchFGColor))
	defaultMarker = " "
	pillMarker    = "▐"

	markerRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(markerFGColor)).
			Background(lipgloss.Color(markerBGColor)).
			Bold(true)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
