package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileCounter
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage represents the current map: its tile grid and the events placed on it.
// Spawn is in tile coordinates.
type Stage struct {
	ID       string
	Name     string
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int

	// Events in their natural index order; dispatch tie-breaks on this order.
	Events []*Event
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// IsSolidAt checks if the tile at tile coordinates is solid
func (s *Stage) IsSolidAt(tx, ty int) bool {
	return s.GetTile(tx, ty).Solid
}

// EventByID returns the event with the given id, or nil
func (s *Stage) EventByID(id int) *Event {
	for _, e := range s.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RefreshEvents re-selects every event's active page against switches
func (s *Stage) RefreshEvents(switches Switches) {
	for _, e := range s.Events {
		e.Refresh(switches)
	}
}

// ClearEventRuntime drops busy and starting flags on every event
func (s *Stage) ClearEventRuntime() {
	for _, e := range s.Events {
		e.ClearRuntime()
	}
}
