package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	TrackMode   key.Binding
	SendMode    key.Binding
	Tune        key.Binding
	SampleNow   key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Target      key.Binding
	ActiveOnly  key.Binding
	GotoFreq    key.Binding
	AtInstant   key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	Top         key.Binding
	Bottom      key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	OpenHelp    key.Binding
	OpenFile    key.Binding
	Export      key.Binding
	CopyRow     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	TrackMode: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "track the receiver"),
	),
	SendMode: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "send mode (pick & tune)"),
	),
	Tune: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "tune to selected row (send mode)"),
	),
	SampleNow: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sample the receiver now"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search (send mode)"),
	),
	ClearSearch: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear search"),
	),
	Target: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "target area filter"),
	),
	ActiveOnly: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle on-air only"),
	),
	GotoFreq: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "go to kHz"),
	),
	AtInstant: key.NewBinding(
		key.WithKeys("@"),
		key.WithHelp("@", "evaluate at UTC instant"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll right"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open schedule file"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export rows as CSV"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row to clipboard"),
	),
}

// ShortHelp feeds the footer legend.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenHelp, k.TrackMode, k.SendMode, k.Search, k.Target, k.ActiveOnly, k.GotoFreq}
}

// FullHelp feeds the help dialog.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TrackMode, k.SendMode, k.Tune, k.SampleNow, k.GotoFreq, k.AtInstant},
		{k.Search, k.ClearSearch, k.Target, k.ActiveOnly, k.OpenFile, k.Export, k.CopyRow},
		{k.RowUp, k.RowDown, k.PageUp, k.PageDown, k.Top, k.Bottom, k.ScrollLeft, k.ScrollRight, k.Quit},
	}
}
