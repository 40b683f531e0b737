package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	for _, path := range []string{userConfigPath("maze.yaml"), filepath.Join("configs", "maze.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := readMaze(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readMaze reads an optional config file. Missing, unparsable or invalid
// files are skipped.
func readMaze(path string) (MazeConfig, bool) {
	cfg := DefaultMazeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the light budget based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Battery = 12000
		cfg.Generator.Branchy = max(cfg.Generator.Branchy-10, 0)
	case DifficultyHard:
		cfg.Player.Battery = 6000
		cfg.Player.DeadPercent = 10
	}
}
