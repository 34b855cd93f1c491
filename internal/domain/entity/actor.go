package entity

import "math"

// Actor is the mobile character the player controls.
// Position is in continuous tile coordinates; (x, y) sits on the anchor
// tile (x, y) when both are whole numbers.
type Actor struct {
	X, Y   float64
	Facing Direction

	// HasPrompt is recomputed every tick by the interaction system
	HasPrompt bool
}

// NewActor creates an actor at the given tile position facing down
func NewActor(x, y float64) *Actor {
	return &Actor{
		X:      x,
		Y:      y,
		Facing: DirDown,
	}
}

// TileX returns the anchor tile column (nearest tile)
func (a *Actor) TileX() int {
	return int(math.Floor(a.X + 0.5))
}

// TileY returns the anchor tile row (nearest tile)
func (a *Actor) TileY() int {
	return int(math.Floor(a.Y + 0.5))
}

// SetTilePos places the actor exactly on a tile
func (a *Actor) SetTilePos(x, y int) {
	a.X = float64(x)
	a.Y = float64(y)
}

// SpriteTop returns the pixel Y of the sprite's top edge in world space.
// The sprite stands on the bottom of its anchor tile and may be taller
// than one tile.
func (a *Actor) SpriteTop(tileSize, spriteHeight int) float64 {
	return (a.Y+1)*float64(tileSize) - float64(spriteHeight)
}
