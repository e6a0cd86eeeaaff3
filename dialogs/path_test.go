package dialogs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func confirm(t *testing.T, d *PathPrompt) tea.Msg {
	t.Helper()
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestOpenDialogResolve(t *testing.T) {
	tests := []struct {
		name    string
		current string
		lastDir string
		input   string
		want    string
	}{
		{"bare name joins last dir", "", "/sked", "ilg.txt", "/sked/ilg.txt"},
		{"absolute path kept", "", "/sked", "/data/eibi.txt", "/data/eibi.txt"},
		{"relative dir kept", "", "/sked", "sub/eibi.txt", "sub/eibi.txt"},
		{"no last dir", "", "", "eibi.txt", "eibi.txt"},
		{"prefilled current file", "/sked/eibi.txt", "/sked", "", "/sked/eibi.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewOpenDialog(tt.current, tt.lastDir)
			if tt.input != "" {
				d.input.SetValue(tt.input)
			}
			msg, ok := confirm(t, d).(OpenConfirmedMsg)
			if !ok {
				t.Fatal("enter should confirm")
			}
			if msg.Path != tt.want {
				t.Fatalf("path = %q, want %q", msg.Path, tt.want)
			}
		})
	}
}

func TestExportDialogFallsBackToPlaceholder(t *testing.T) {
	d := NewExportDialog("eibi-export.csv", "/tmp")
	d.input.SetValue("   ")
	msg, ok := confirm(t, d).(ExportConfirmedMsg)
	if !ok || msg.Path != "/tmp/eibi-export.csv" {
		t.Fatalf("unexpected confirm %#v", msg)
	}
}

func TestPathPromptNoPath(t *testing.T) {
	d := NewOpenDialog("", "")
	if msg := confirm(t, d); msg != nil {
		t.Fatalf("empty prompt confirmed %#v", msg)
	}
}

func TestPathPromptCancelAndHide(t *testing.T) {
	d := NewOpenDialog("/sked/eibi.txt", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should cancel")
	}
	if _, ok := cmd().(CanceledMsg); !ok {
		t.Fatal("esc should send CanceledMsg")
	}

	d.Hide()
	if d.IsVisible() || d.View() != "" {
		t.Fatal("hidden dialog should render nothing")
	}
	if _, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("hidden dialog should ignore keys")
	}
}
