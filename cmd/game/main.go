package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/rangeprompt/internal/application/game"
	"github.com/younwookim/rangeprompt/internal/application/scene/playing"
	"github.com/younwookim/rangeprompt/internal/application/session"
	"github.com/younwookim/rangeprompt/internal/infrastructure/config"
	"github.com/younwookim/rangeprompt/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	mapFlag := flag.String("map", "town", "Map to start on")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and report interactions")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return fmt.Errorf("config subfs: %w", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Tunables.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine, err := newScriptEngine(loader, log)
	if err != nil {
		return err
	}
	defer engine.Close()

	if *replayFlag != "" {
		res, err := runReplay(*replayFlag, cfg.Tunables, loader, engine, log)
		if err != nil {
			return err
		}
		log.Info("replay finished",
			zap.Int("frames", res.Frames),
			zap.Int("interactions", len(res.Triggered)),
			zap.String("map", res.FinalMap),
			zap.Float64("x", res.FinalX),
			zap.Float64("y", res.FinalY))
		return nil
	}

	sess, err := session.New(cfg.Tunables, loader, engine, *mapFlag, log)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	display := cfg.Tunables.Display
	g := game.New(
		playing.New(cfg, sess, *mapFlag, *recordFlag, log.Named("scene")),
		display.ScreenWidth, display.ScreenHeight, display.Framerate,
		log.Named("game"),
	)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Range Prompt")
	ebiten.SetTPS(display.Framerate)

	log.Info("starting", zap.String("map", *mapFlag))
	return ebiten.RunGame(g)
}

// newScriptEngine loads every interaction script into one Lua VM
func newScriptEngine(loader *config.Loader, log *zap.Logger) (*scripting.Engine, error) {
	scripts, err := loader.LoadScripts()
	if err != nil {
		return nil, fmt.Errorf("load scripts: %w", err)
	}

	engine := scripting.NewEngine(log.Named("lua"))
	for _, s := range scripts {
		if err := engine.LoadSource(s.Name, s.Source); err != nil {
			engine.Close()
			return nil, err
		}
	}
	log.Info("scripts loaded", zap.Int("files", len(scripts)))
	return engine, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
