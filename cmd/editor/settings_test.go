package main

import (
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "editor_settings.yaml")

	want := EditorSettings{
		WindowWidth:      1920,
		WindowHeight:     1080,
		AssetsDir:        "content",
		LastScenePath:    "scenes/level_01.json",
		GridSize:         16,
		SnapToGrid:       true,
		ShowGrid:         false,
		ShowColliders:    true,
		ContinuousRender: true,
	}
	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("got %+v, want defaults", got)
	}
}
