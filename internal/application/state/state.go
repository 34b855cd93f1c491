package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StateInteracting
	StateTransferring
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateInteracting:
		return "Interacting"
	case StateTransferring:
		return "Transferring"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// AcceptsMovement reports whether the actor may move in this state
func (s GameState) AcceptsMovement() bool {
	return s == StatePlaying
}
