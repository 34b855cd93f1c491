package system

import "github.com/younwookim/rangeprompt/internal/domain/entity"

// InRange reports whether the actor at (ax, ay) lies inside the event's
// range window anchored at (ex, ey). The window is an axis-aligned
// rectangle with each side sized independently; originBias in [-1, 0]
// shifts only the vertical check point (0 = feet, -1 = top of sprite).
// An all-zero window never matches.
func InRange(ax, ay float64, ex, ey int, w entity.RangeWindow, originBias float64) bool {
	if w.IsZero() {
		return false
	}
	dx := ax - float64(ex)
	dy := (ay - float64(ey)) + originBias
	return dx >= -float64(w.Left) && dx <= float64(w.Right) &&
		dy >= -float64(w.Up) && dy <= float64(w.Down)
}

// FacingAllows reports whether the actor's facing satisfies the event's
// facing requirement. An empty requirement always passes.
func FacingAllows(facing entity.Direction, required entity.FacingSet) bool {
	return required.Allows(facing)
}
