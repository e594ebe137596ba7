package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/number-catcher/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 3)
	scr.DrawTextColored(0, 0, "SUM: 3/10", core.ColorWhite)
	scr.DrawTextColored(2, 1, "(7)", core.ColorAqua)
	scr.SetColored(5, 2, '▲', core.ColorBlue)

	out := RenderScreen(scr)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	for _, w := range []string{"SUM: 3/10", "(7)", "▲"} {
		if !strings.Contains(out, w) {
			t.Errorf("expected %q in output %q", w, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(200)).Render("x")
	if got != "x" {
		t.Errorf("got %q, expected the unstyled default", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"abcdef", 4, "abcdef"},
		{"a\nbbb", 5, "  a\n bbb"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
