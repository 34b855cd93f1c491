package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tunables *Tunables
	Entities *EntitiesConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTunables loads interact.toml on top of DefaultTunables
func (l *Loader) LoadTunables() (*Tunables, error) {
	data, err := fs.ReadFile(l.fsys, "interact.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to read interact.toml: %w", err)
	}

	cfg := DefaultTunables()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse interact.toml: %w", err)
	}

	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a map YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := "maps/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// Script is the source of one Lua file
type Script struct {
	Name   string
	Source string
}

// LoadScripts loads every scripts/*.lua file in name order
func (l *Loader) LoadScripts() ([]Script, error) {
	matches, err := fs.Glob(l.fsys, "scripts/*.lua")
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	sort.Strings(matches)

	scripts := make([]Script, 0, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(l.fsys, m)
		if err != nil {
			return nil, fmt.Errorf("failed to read script %s: %w", m, err)
		}
		scripts = append(scripts, Script{Name: path.Base(m), Source: string(data)})
	}

	return scripts, nil
}

// LoadAll loads all base configurations (tunables, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	tunables, err := l.LoadTunables()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tunables: tunables,
		Entities: entities,
	}, nil
}
