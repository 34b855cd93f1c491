package config

// Tunables is the root config for interact.toml.
// Read once at startup; immutable afterwards.
type Tunables struct {
	Display     DisplayConfig     `toml:"display"`
	Prompt      PromptConfig      `toml:"prompt"`
	Dispatch    DispatchConfig    `toml:"dispatch"`
	Movement    MovementConfig    `toml:"movement"`
	Interpreter InterpreterConfig `toml:"interpreter"`
	Logging     LoggingConfig     `toml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int `toml:"screen_width"`
	ScreenHeight int `toml:"screen_height"`
	Scale        int `toml:"scale"`
	Framerate    int `toml:"framerate"`
}

// PromptConfig configures the interaction prompt indicator
type PromptConfig struct {
	IconOffsetY       int     `toml:"icon_offset_y"`       // Offset from the sprite's top edge (pixels)
	OriginBiasPercent int     `toml:"origin_bias_percent"` // 0 = feet, 100 = top of sprite
	AnimFrames        int     `toml:"anim_frames"`
	FadeFrames        int     `toml:"fade_frames"`
	BounceHeight      float64 `toml:"bounce_height"`
}

// OriginBias converts the percentage into the vertical bias in [-1, 0]
func (c PromptConfig) OriginBias() float64 {
	p := c.OriginBiasPercent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return -float64(p) / 100
}

type DispatchConfig struct {
	Verbose           bool `toml:"verbose"`             // Per-tick diagnostic trace
	TouchHonorsFacing bool `toml:"touch_honors_facing"` // Apply facing filter to touch triggers
}

type MovementConfig struct {
	Speed        float64 `toml:"speed"`         // Tiles per frame
	SpriteHeight int     `toml:"sprite_height"` // Pixels
}

type InterpreterConfig struct {
	MessageFrames int `toml:"message_frames"` // Frames a message stays without input
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultTunables returns the values used for keys missing from interact.toml
func DefaultTunables() *Tunables {
	return &Tunables{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Prompt: PromptConfig{
			IconOffsetY:       -12,
			OriginBiasPercent: 0,
			AnimFrames:        20,
			FadeFrames:        10,
			BounceHeight:      8,
		},
		Movement: MovementConfig{
			Speed:        0.0625,
			SpriteHeight: 24,
		},
		Interpreter: InterpreterConfig{
			MessageFrames: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
