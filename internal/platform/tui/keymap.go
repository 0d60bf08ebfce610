package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crypto-flap/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Flap   key.Binding
	Mute   key.Binding
	Scores key.Binding
	Quit   key.Binding
	Back   key.Binding // Closes the top runs table
}

// ShortHelp returns bindings for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Mute, k.Scores, k.Quit}
}

// FullHelp returns all bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap}, {k.Mute, k.Scores, k.Back, k.Quit}}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k", "enter"),
			key.WithHelp("space/click", "flap"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// MapKey translates a key press to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	}
	return core.ActionNone
}

// MapMouse translates a mouse event to an action. Any button press flaps;
// wheel, motion and release events are ignored.
func MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft, tea.MouseButtonMiddle, tea.MouseButtonRight:
		return core.ActionFlap
	}
	return core.ActionNone
}
