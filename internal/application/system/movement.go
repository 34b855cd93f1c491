package system

import (
	"math"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
)

// MovementSystem moves the actor across the tile grid.
// Positions are continuous; a move is blocked when the destination anchor
// tile is solid, or occupied by an event.
type MovementSystem struct {
	speed float64 // tiles per frame
}

// NewMovementSystem creates a movement system
func NewMovementSystem(speed float64) *MovementSystem {
	if speed <= 0 {
		speed = 0.0625
	}
	return &MovementSystem{speed: speed}
}

// Apply turns and moves the actor. Each axis resolves independently so the
// actor slides along walls. Returns true if the anchor tile changed.
func (s *MovementSystem) Apply(actor *entity.Actor, stage *entity.Stage, intent MoveIntent) bool {
	if actor == nil || stage == nil || intent.IsZero() {
		return false
	}
	if d := intent.Facing(); d != entity.DirNone {
		actor.Facing = d
	}

	tx, ty := actor.TileX(), actor.TileY()

	if intent.DX != 0 {
		nx := actor.X + float64(intent.DX)*s.speed
		if !s.blocked(stage, leadingTile(nx, intent.DX), actor.TileY()) {
			actor.X = nx
		} else {
			actor.X = float64(actor.TileX())
		}
	}
	if intent.DY != 0 {
		ny := actor.Y + float64(intent.DY)*s.speed
		if !s.blocked(stage, actor.TileX(), leadingTile(ny, intent.DY)) {
			actor.Y = ny
		} else {
			actor.Y = float64(actor.TileY())
		}
	}

	return actor.TileX() != tx || actor.TileY() != ty
}

func (s *MovementSystem) blocked(stage *entity.Stage, tx, ty int) bool {
	if stage.IsSolidAt(tx, ty) {
		return true
	}
	for _, ev := range stage.Events {
		if ev.X != tx || ev.Y != ty {
			continue
		}
		if page := ev.ActivePage(); page != nil && page.Trigger == entity.TriggerActionButton {
			return true
		}
	}
	return false
}

// leadingTile is the tile a position overlaps on the side it moves toward
func leadingTile(v float64, dir int) int {
	if dir < 0 {
		return int(math.Floor(v))
	}
	return int(math.Ceil(v))
}
