package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/serpientes/internal/core"
)

// KeyMap defines the key bindings of the board screen.
type KeyMap struct {
	Roll    key.Binding
	Detail  key.Binding
	Mute    key.Binding
	History key.Binding
	Replay  key.Binding
	Restart key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Detail, k.Mute, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Roll, k.Detail, k.Mute},
		{k.History, k.Replay, k.Restart},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Roll: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "tirar dado"),
		),
		Detail: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "ver casilla"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "voz on/off"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "victorias"),
		),
		Replay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "releer versos"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "nuevo juego"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ayuda"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cerrar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
	}
}

// Action translates a key message to a semantic action.
// Returns core.ActionNone for keys without a binding.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Roll):
		return core.ActionRoll
	case key.Matches(msg, k.Detail):
		return core.ActionDetail
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.History):
		return core.ActionHistory
	case key.Matches(msg, k.Replay):
		return core.ActionReplay
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
