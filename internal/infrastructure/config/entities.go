package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Actor  ActorConfig           `json:"actor"`
	Events map[string]EventStyle `json:"events"` // keyed by trigger kind name
	Prompt PromptStyle           `json:"prompt"`
}

type ActorConfig struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Color  ColorRGB `json:"color"`
}

type EventStyle struct {
	Color ColorRGB `json:"color"`
}

type PromptStyle struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Color  ColorRGB `json:"color"`
}

type ColorRGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
