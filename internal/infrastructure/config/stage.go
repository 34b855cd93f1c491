package config

// StageConfig is the root config for map YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    int                          `yaml:"tile_size"`
	PlayerSpawn PositionConfig               `yaml:"player_spawn"`
	Tiles       []string                     `yaml:"tiles"`
	TileMapping map[string]TileMappingConfig `yaml:"tile_mapping"`
	Events      []EventConfig                `yaml:"events"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

// EventConfig places one interactable on the map
type EventConfig struct {
	ID    int          `yaml:"id"`
	Name  string       `yaml:"name"`
	X     int          `yaml:"x"`
	Y     int          `yaml:"y"`
	Note  string       `yaml:"note"`
	Pages []PageConfig `yaml:"pages"`
}

type PageConfig struct {
	Trigger string `yaml:"trigger"` // action, player_touch, event_touch
	Note    string `yaml:"note"`
	Script  string `yaml:"script"`
	Switch  string `yaml:"switch"`
}
