package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		t.Fatalf("embedded maze.yaml does not parse: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded defaults drifted from DefaultMazeConfig:\n got %+v\nwant %+v", cfg, DefaultMazeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	data := []byte("generator:\n  size: 25\nplayer:\n  battery: 4000\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.Generator.Size != 25 {
		t.Errorf("Expected size 25, got %d", cfg.Generator.Size)
	}
	if cfg.Player.Battery != 4000 {
		t.Errorf("Expected battery 4000, got %d", cfg.Player.Battery)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Generator.Twisty != DefaultMazeConfig().Generator.Twisty {
		t.Errorf("Expected default twisty, got %d", cfg.Generator.Twisty)
	}
}

func TestLoadMazeErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad yaml", "generator: [", nil},
		{"zero battery", "player:\n  battery: 0\n", ErrInvalidConfig},
		{"no levels", "campaign:\n  levels: 0\n", ErrInvalidConfig},
		{"inverted light", "light:\n  dark_below: 5\n  dim_below: 2\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadMaze(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := LoadMaze(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing custom config")
	}
}

func TestApplyMazePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		wantBattery int
	}{
		{DifficultyEasy, true, 0.0, 12000},
		{DifficultyNormal, true, 0.3, 8000},
		{DifficultyHard, true, 0.7, 6000},
		{DifficultyFixed, false, 0.0, 8000},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMazeConfig()
			ApplyMazePreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Player.Battery != tt.wantBattery {
				t.Errorf("Battery = %d, want %d", cfg.Player.Battery, tt.wantBattery)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("Expected an error for an unknown preset")
	}
}
