package main

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestDropCells(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"6005.00 Radio", 0, "6005.00 Radio"},
		{"6005.00 Radio", 8, "Radio"},
		{"短波 Radio", 4, " Radio"},
		{"abc", 10, ""},
	}
	for _, tt := range tests {
		if got := dropCells(tt.in, tt.n); got != tt.want {
			t.Errorf("dropCells(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestPlainHelpers(t *testing.T) {
	if got := truncatePlain("Radio Bulgaria", 5); got != "Radio" {
		t.Errorf("truncatePlain = %q", got)
	}
	if got := truncatePlain("x", 0); got != "" {
		t.Errorf("truncatePlain width 0 = %q", got)
	}
	if got := padRightPlain("短波", 6); got != "短波  " {
		t.Errorf("padRightPlain = %q", got)
	}
}

func TestRenderFooter(t *testing.T) {
	st := footerState{
		Mode:          "TRACK",
		FileName:      "/sked/eibi.txt",
		FilterLabel:   "target=any on-air=off",
		Frequency:     "6005.00 kHz",
		Row:           2,
		TotalRows:     3,
		StatusMessage: "Tracking the receiver",
		Legend:        "(q quit)",
	}
	out := renderFooter(120, st, defaultFooterStyles())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("footer has %d lines", len(lines))
	}
	for _, want := range []string{"TRACK", "eibi.txt", "6005.00 kHz", "Rows 2/3"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("control bar missing %q: %q", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "Tracking the receiver") || !strings.Contains(lines[1], "(q quit)") {
		t.Errorf("status bar = %q", lines[1])
	}

	if renderFooter(0, st, defaultFooterStyles()) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestMarkerRowFitsViewport(t *testing.T) {
	m, _ := newTestModel(t, &fakeTuner{})
	m.Init()
	observe(m, 20_000_000, true)
	rows := m.rows()
	if !rows[len(rows)-1].IsMarker() {
		t.Fatal("marker should trail every record")
	}
	line, ok := m.renderRowAt(len(rows)-1, rows)
	if !ok || !strings.Contains(line, "---- 20000.00") {
		t.Fatalf("marker row = %q", line)
	}
	if w := runewidth.StringWidth(m.fitLine(strings.Repeat("x", 500))); w > m.viewport.Width-gutterWidth {
		t.Errorf("fitLine width %d exceeds the table", w)
	}
}
