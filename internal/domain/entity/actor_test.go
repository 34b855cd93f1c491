package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActor(t *testing.T) {
	a := NewActor(3, 4.5)

	assert.Equal(t, 3.0, a.X)
	assert.Equal(t, 4.5, a.Y)
	assert.Equal(t, DirDown, a.Facing)
	assert.False(t, a.HasPrompt)
}

func TestActor_Tile(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"on tile", 5, 7, 5, 7},
		{"just past tile", 5.2, 7.4, 5, 7},
		{"halfway rounds up", 5.5, 7.5, 6, 8},
		{"approaching next", 5.9, 6.6, 6, 7},
		{"negative", -0.2, -0.7, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(tt.x, tt.y)
			assert.Equal(t, tt.wantX, a.TileX())
			assert.Equal(t, tt.wantY, a.TileY())
		})
	}
}

func TestActor_SetTilePos(t *testing.T) {
	a := NewActor(1.3, 2.7)
	a.SetTilePos(8, 9)

	assert.Equal(t, 8.0, a.X)
	assert.Equal(t, 9.0, a.Y)
}

func TestActor_SpriteTop(t *testing.T) {
	a := NewActor(0, 2)

	// 16px tiles, 24px sprite: feet at (2+1)*16 = 48, top at 24
	assert.Equal(t, 24.0, a.SpriteTop(16, 24))

	a.Y = 2.5
	assert.Equal(t, 32.0, a.SpriteTop(16, 24))
}
