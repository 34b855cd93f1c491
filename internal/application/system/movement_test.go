package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
)

// newWalledStage builds a w x h room with solid borders
func newWalledStage(w, h int, events ...*entity.Event) *entity.Stage {
	tiles := make([][]entity.Tile, h)
	for y := range tiles {
		tiles[y] = make([]entity.Tile, w)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true}
			}
		}
	}
	return &entity.Stage{Width: w, Height: h, TileSize: 16, Tiles: tiles, Events: events}
}

func TestMovementSystem_Apply(t *testing.T) {
	t.Run("moves by speed and turns", func(t *testing.T) {
		sys := NewMovementSystem(0.25)
		stage := newWalledStage(10, 10)
		actor := entity.NewActor(4, 4)

		changed := sys.Apply(actor, stage, MoveIntent{DX: 1})

		assert.False(t, changed)
		assert.InDelta(t, 4.25, actor.X, 1e-9)
		assert.InDelta(t, 4.0, actor.Y, 1e-9)
		assert.Equal(t, entity.DirRight, actor.Facing)
	})

	t.Run("reports anchor tile change", func(t *testing.T) {
		sys := NewMovementSystem(0.25)
		stage := newWalledStage(10, 10)
		actor := entity.NewActor(4, 4)

		var changes int
		for i := 0; i < 4; i++ {
			if sys.Apply(actor, stage, MoveIntent{DY: -1}) {
				changes++
			}
		}

		assert.Equal(t, 1, changes)
		assert.InDelta(t, 3.0, actor.Y, 1e-9)
		assert.Equal(t, 3, actor.TileY())
		assert.Equal(t, entity.DirUp, actor.Facing)
	})

	t.Run("walls block and snap", func(t *testing.T) {
		sys := NewMovementSystem(0.25)
		stage := newWalledStage(10, 10)
		actor := entity.NewActor(1, 1)

		for i := 0; i < 8; i++ {
			sys.Apply(actor, stage, MoveIntent{DX: -1})
		}

		assert.InDelta(t, 1.0, actor.X, 1e-9)
		assert.Equal(t, entity.DirLeft, actor.Facing)
	})

	t.Run("action events block, touch events do not", func(t *testing.T) {
		sys := NewMovementSystem(0.5)
		npc := newTestEvent(1, 5, 4, "<range:1111>", entity.TriggerActionButton)
		door := newTestEvent(2, 4, 5, "<range:1111>", entity.TriggerPlayerTouch)
		stage := newWalledStage(10, 10, npc, door)

		actor := entity.NewActor(4, 4)
		for i := 0; i < 4; i++ {
			sys.Apply(actor, stage, MoveIntent{DX: 1})
		}
		assert.InDelta(t, 4.0, actor.X, 1e-9)

		for i := 0; i < 2; i++ {
			sys.Apply(actor, stage, MoveIntent{DY: 1})
		}
		assert.Equal(t, 5, actor.TileY())
	})

	t.Run("no intent leaves facing alone", func(t *testing.T) {
		sys := NewMovementSystem(0.25)
		actor := entity.NewActor(4, 4)
		actor.Facing = entity.DirLeft

		assert.False(t, sys.Apply(actor, newWalledStage(10, 10), MoveIntent{}))
		assert.Equal(t, entity.DirLeft, actor.Facing)
	})

	t.Run("nil stage", func(t *testing.T) {
		sys := NewMovementSystem(0.25)
		actor := entity.NewActor(4, 4)

		assert.False(t, sys.Apply(actor, nil, MoveIntent{DX: 1}))
		assert.InDelta(t, 4.0, actor.X, 1e-9)
	})
}

func TestMoveIntent_Facing(t *testing.T) {
	tests := []struct {
		intent MoveIntent
		want   entity.Direction
	}{
		{MoveIntent{}, entity.DirNone},
		{MoveIntent{DX: 1}, entity.DirRight},
		{MoveIntent{DX: -1}, entity.DirLeft},
		{MoveIntent{DY: -1}, entity.DirUp},
		{MoveIntent{DY: 1}, entity.DirDown},
		{MoveIntent{DX: 1, DY: -1}, entity.DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.intent.Facing())
		})
	}
}

func TestInputSystem_Intents(t *testing.T) {
	sys := NewInputSystem()

	tests := []struct {
		name   string
		input  InputState
		move   MoveIntent
		action bool
	}{
		{"idle", InputState{}, MoveIntent{}, false},
		{"left", InputState{Left: true}, MoveIntent{DX: -1}, false},
		{"opposites cancel", InputState{Left: true, Right: true}, MoveIntent{}, false},
		{"diagonal", InputState{Right: true, Down: true}, MoveIntent{DX: 1, DY: 1}, false},
		{"action", InputState{Action: true}, MoveIntent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, action := sys.Intents(tt.input)
			assert.Equal(t, tt.move, move)
			assert.Equal(t, tt.action, action.Pressed)
		})
	}
}
