package system

import "github.com/younwookim/rangeprompt/internal/domain/entity"

// Intent represents something the actor wants to do this frame
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention.
// DX and DY are -1, 0 or 1 per axis.
type MoveIntent struct {
	DX, DY int
}

func (MoveIntent) isIntent() {}

// IsZero reports whether the intent moves nowhere
func (m MoveIntent) IsZero() bool {
	return m.DX == 0 && m.DY == 0
}

// Facing returns the direction the actor turns to. Vertical input wins
// on diagonals; DirNone means no change.
func (m MoveIntent) Facing() entity.Direction {
	switch {
	case m.DY < 0:
		return entity.DirUp
	case m.DY > 0:
		return entity.DirDown
	case m.DX < 0:
		return entity.DirLeft
	case m.DX > 0:
		return entity.DirRight
	}
	return entity.DirNone
}

// ActionIntent represents an action button press
type ActionIntent struct {
	Pressed bool
}

func (ActionIntent) isIntent() {}
