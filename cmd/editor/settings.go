package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EditorSettings is the persisted editor configuration, stored as YAML
// next to the user's scenes.
type EditorSettings struct {
	WindowWidth   int     `yaml:"window_width"`
	WindowHeight  int     `yaml:"window_height"`
	AssetsDir     string  `yaml:"assets_dir"`
	LastScenePath string  `yaml:"last_scene_path"`
	GridSize      float64 `yaml:"grid_size"`
	SnapToGrid    bool    `yaml:"snap_to_grid"`
	ShowGrid      bool    `yaml:"show_grid"`
	ShowColliders bool    `yaml:"show_colliders"`
	// ContinuousRender redraws the scene every frame instead of only when
	// something changed.
	ContinuousRender bool `yaml:"continuous_render"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() EditorSettings {
	return EditorSettings{
		WindowWidth:   1280,
		WindowHeight:  800,
		AssetsDir:     "assets",
		GridSize:      32,
		ShowGrid:      true,
		ShowColliders: true,
	}
}

// LoadSettings reads settings from path. A missing file is not an error;
// it returns the defaults.
func LoadSettings(path string) (EditorSettings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("read settings: %w", err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes settings to path, creating parent directories.
func SaveSettings(path string, s EditorSettings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
