package system

import (
	"fmt"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
	"github.com/younwookim/rangeprompt/internal/infrastructure/config"
)

const defaultTileSize = 16

// LoadStage converts a StageConfig into a Stage entity.
// Events keep their config order, which is the dispatch order.
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}

	tileWidth := 0
	for _, row := range cfg.Tiles {
		if len(row) > tileWidth {
			tileWidth = len(row)
		}
	}
	tileHeight := len(cfg.Tiles)
	if tileWidth == 0 || tileHeight == 0 {
		return nil, fmt.Errorf("map %s has no tiles", cfg.ID)
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Tiles {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "counter":
				tileType = entity.TileCounter
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	events, err := loadEvents(cfg.Events, tileWidth, tileHeight)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", cfg.ID, err)
	}

	return &entity.Stage{
		ID:       cfg.ID,
		Name:     cfg.Name,
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: tileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
		Events:   events,
	}, nil
}

func loadEvents(cfgs []config.EventConfig, width, height int) ([]*entity.Event, error) {
	events := make([]*entity.Event, 0, len(cfgs))
	seen := make(map[int]bool, len(cfgs))

	for _, ec := range cfgs {
		if seen[ec.ID] {
			return nil, fmt.Errorf("duplicate event id %d", ec.ID)
		}
		seen[ec.ID] = true

		if ec.X < 0 || ec.X >= width || ec.Y < 0 || ec.Y >= height {
			return nil, fmt.Errorf("event %d (%s) at (%d,%d) is outside the map", ec.ID, ec.Name, ec.X, ec.Y)
		}

		pages := make([]entity.Page, 0, len(ec.Pages))
		for i, pc := range ec.Pages {
			kind, err := entity.ParseTriggerKind(pc.Trigger)
			if err != nil {
				return nil, fmt.Errorf("event %d page %d: %w", ec.ID, i+1, err)
			}
			pages = append(pages, entity.Page{
				Trigger: kind,
				Note:    pc.Note,
				Script:  pc.Script,
				Switch:  pc.Switch,
			})
		}

		events = append(events, entity.NewEvent(ec.ID, ec.Name, ec.X, ec.Y, ec.Note, pages))
	}

	return events, nil
}
