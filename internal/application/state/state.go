package state

// GameState names a scene in the scene state machine
type GameState int

const (
	// StateNone is the zero value; no scene is active.
	StateNone GameState = iota
	StateMenu
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "game"
	case StatePaused:
		return "pause"
	default:
		return "unknown"
	}
}

// Parse returns the state for a name produced by String.
func Parse(name string) (GameState, bool) {
	switch name {
	case "menu":
		return StateMenu, true
	case "game":
		return StatePlaying, true
	case "pause":
		return StatePaused, true
	default:
		return StateNone, false
	}
}
