package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trophy-runner/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMiddle, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionMiddle, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone, false},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; want %v, %v", tt.msg, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	in := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &in) {
		t.Error("left reported as quit")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &in) {
		t.Error("right reported as quit")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &in) {
		t.Error("ctrl+c not reported as quit")
	}

	if !in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("frame actions = %v", in.Actions)
	}
	if in.Has(core.ActionQuit) {
		t.Error("quit leaked into the input frame")
	}
	if got := in.LaneAction(); got != core.ActionRight {
		t.Errorf("LaneAction() = %v, want Right", got)
	}
}
