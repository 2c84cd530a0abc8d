package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bio-runner/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionInteract},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionInteract},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionStop},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionHistory},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMouseAction(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, core.ActionInteract},
		{"left release", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, core.ActionNone},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, core.ActionNone},
		{"motion", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MouseAction(tc.msg); got != tc.want {
				t.Errorf("MouseAction() = %s, expected %s", got, tc.want)
			}
		})
	}
}
