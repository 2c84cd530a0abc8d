package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bio-runner/internal/core"
)

// KeyMap defines the key bindings of the runner card.
type KeyMap struct {
	Interact key.Binding
	Stop     key.Binding
	History  key.Binding
	Sort     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Interact, k.Stop, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Interact, k.Stop},
		{k.History, k.Sort, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Interact: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/↑/click", "play · jump"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "recent/top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a host action.
// Interact keys are consumed here so the terminal never scrolls.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Interact):
		return core.ActionInteract
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.History):
		return core.ActionHistory
	}
	return core.ActionNone
}

// MouseAction translates a mouse message to a host action.
// Only a left-button press interacts.
func MouseAction(msg tea.MouseMsg) core.Action {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		return core.ActionInteract
	}
	return core.ActionNone
}
