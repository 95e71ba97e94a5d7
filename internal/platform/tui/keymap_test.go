package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-trace/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected core.Action
		quit     bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"enter", core.ActionNext, false},
		{"n", core.ActionNext, false},
		{"r", core.ActionRestart, false},
		{"s", core.ActionCue, false},
		{"d", core.ActionDemo, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.key, action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, true},
		{"left drag", tea.MouseMsg{X: 5, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, true},
		{"release", tea.MouseMsg{X: 5, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, false},
		{"right press", tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, false},
		{"hover", tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := km.MapMouseToFrame(tc.msg, &frame); got != tc.expected {
				t.Errorf("MapMouseToFrame() = %v, expected %v", got, tc.expected)
			}
			if tc.expected {
				if len(frame.Pointer) != 1 || frame.Pointer[0] != (core.PointerSample{X: tc.msg.X, Y: tc.msg.Y}) {
					t.Errorf("Pointer = %v, expected one sample at (%d,%d)", frame.Pointer, tc.msg.X, tc.msg.Y)
				}
			} else if len(frame.Pointer) != 0 {
				t.Errorf("Pointer = %v, expected none", frame.Pointer)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionRewards},
		{"q", MenuActionQuit},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}
