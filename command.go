package main

type Command int

const (
	CmdNone Command = iota
	CmdGoto
	CmdSearch
	CmdTarget
	CmdInstant
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdGoto
	case '/':
		return CmdSearch
	case '@':
		return CmdInstant
	default:
		return CmdNone
	}
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdGoto:
		return "GOTO"
	case CmdSearch:
		return "SEARCH"
	case CmdTarget:
		return "TARGET"
	case CmdInstant:
		return "AT"
	default:
		return ""
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdTarget:
		return "target: "
	case CmdGoto:
		return "kHz: "
	case CmdInstant:
		return "UTC (YYYY-MM-DD HH:MM): "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer.
func (m *model) activeCommandLine() string {
	return m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf + "▏"
}

// enterCommand opens the command line, prefilled with buf.
func (m *model) enterCommand(cmd Command, buf string) {
	m.ui.command = CommandInput{cmd: cmd, buf: buf}
	m.ui.mode = modeCommand
}
