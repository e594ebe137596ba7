package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-catcher/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"l", core.ActionRight},
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"j", core.ActionDown},
		{" ", core.ActionConfirm},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"tab", core.ActionNone},
		{"ctrl+s", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.Action(keyMsg(tt.key)); got != tt.expected {
				t.Errorf("Action(%q) = %s, expected %s", tt.key, got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("expected short help bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 9 {
		t.Errorf("got %d bindings in full help, expected 9", total)
	}
}

func TestDirectionHelpDescribesOwnKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		own     string
		other   string
	}{
		{"left", km.Left, "←", "→"},
		{"right", km.Right, "→", "←"},
		{"up", km.Up, "↑", "↓"},
		{"down", km.Down, "↓", "↑"},
	}
	for _, tt := range tests {
		h := tt.binding.Help()
		if !strings.Contains(h.Key, tt.own) || strings.Contains(h.Key, tt.other) {
			t.Errorf("%s: got help key %q, expected only %q", tt.name, h.Key, tt.own)
		}
		if h.Desc != tt.name {
			t.Errorf("%s: got help desc %q, expected %q", tt.name, h.Desc, tt.name)
		}
	}

	steer := km.ShortHelp()[0]
	if steer.Help().Desc != "steer" {
		t.Fatalf("got %q first in short help, expected steer", steer.Help().Desc)
	}
	for _, d := range []key.Binding{km.Left, km.Right, km.Up, km.Down} {
		for _, k := range d.Keys() {
			if !slices.Contains(steer.Keys(), k) {
				t.Errorf("steer help is missing key %q", k)
			}
		}
	}
}
