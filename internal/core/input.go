package core

// Action represents a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRoll           // Space, Enter - throw the die
	ActionDetail         // D - show the detail of the current space again
	ActionMute           // M - toggle the voice
	ActionHistory        // H - victory history
	ActionReplay         // P - read the collected verses again after a victory
	ActionHelp           // ? - full key help
	ActionBack           // Esc - close an overlay
	ActionRestart        // R - new game after a victory
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRoll:
		return "Roll"
	case ActionDetail:
		return "Detail"
	case ActionMute:
		return "Mute"
	case ActionHistory:
		return "History"
	case ActionReplay:
		return "Replay"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
