package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadTunables(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadTunables()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, -6, cfg.Prompt.IconOffsetY)
	assert.Equal(t, 50, cfg.Prompt.OriginBiasPercent)
	assert.Equal(t, 20, cfg.Prompt.AnimFrames)
	assert.Equal(t, 10, cfg.Prompt.FadeFrames)
	assert.False(t, cfg.Dispatch.TouchHonorsFacing)
	assert.Equal(t, 0.0625, cfg.Movement.Speed)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoader_LoadTunables_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"interact.toml": {Data: []byte("[dispatch]\nverbose = true\n")},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadTunables()
	require.NoError(t, err)

	assert.True(t, cfg.Dispatch.Verbose)
	assert.Equal(t, 20, cfg.Prompt.AnimFrames, "missing keys keep defaults")
	assert.Equal(t, 120, cfg.Interpreter.MessageFrames)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoader_LoadTunables_Invalid(t *testing.T) {
	fsys := fstest.MapFS{
		"interact.toml": {Data: []byte("[prompt\nanim_frames = ")},
	}
	_, err := NewFSLoader(fsys, ".").LoadTunables()
	assert.Error(t, err)

	_, err = NewFSLoader(fstest.MapFS{}, ".").LoadTunables()
	assert.Error(t, err)
}

func TestPromptConfig_OriginBias(t *testing.T) {
	tests := []struct {
		percent int
		want    float64
	}{
		{0, 0},
		{50, -0.5},
		{100, -1},
		{150, -1},
		{-20, 0},
	}

	for _, tt := range tests {
		cfg := PromptConfig{OriginBiasPercent: tt.percent}
		assert.Equal(t, tt.want, cfg.OriginBias(), "percent %d", tt.percent)
	}
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Actor.Height)
	action, ok := cfg.Events["action"]
	require.True(t, ok)
	assert.Equal(t, uint8(230), action.Color.B)
	assert.Equal(t, 8, cfg.Prompt.Width)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("town")
	require.NoError(t, err)

	assert.Equal(t, "town", cfg.ID)
	assert.Equal(t, "Town Square", cfg.Name)
	assert.Equal(t, 16, cfg.TileSize)
	assert.Equal(t, 9, cfg.PlayerSpawn.X)
	assert.Equal(t, 12, cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Tiles, 15)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)

	require.NotEmpty(t, cfg.Events)
	oldMan := cfg.Events[1]
	assert.Equal(t, "old_man", oldMan.Name)
	assert.Equal(t, "<range:1111>", oldMan.Note)
	require.Len(t, oldMan.Pages, 2)
	assert.Equal(t, "talked_to_old_man", oldMan.Pages[1].Switch)
}

func TestLoader_LoadStage_DefaultsID(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/cave.yaml": {Data: []byte("name: Cave\ntiles: [\"..\"]\n")},
	}

	cfg, err := NewFSLoader(fsys, ".").LoadStage("cave")
	require.NoError(t, err)
	assert.Equal(t, "cave", cfg.ID)

	_, err = NewFSLoader(fsys, ".").LoadStage("missing")
	assert.Error(t, err)
}

func TestLoader_LoadScripts(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	scripts, err := loader.LoadScripts()
	require.NoError(t, err)

	require.Len(t, scripts, 2)
	assert.Equal(t, "house.lua", scripts[0].Name)
	assert.Equal(t, "town.lua", scripts[1].Name)
	assert.Contains(t, scripts[1].Source, "function old_man")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Tunables)
	assert.NotNil(t, cfg.Entities)
}
