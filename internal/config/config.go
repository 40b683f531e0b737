// Package config provides YAML-based game configuration loading and
// difficulty management for the maze crawler.
package config

import (
	"errors"
	"fmt"
)

// MazeConfig contains all configuration for the maze crawler.
type MazeConfig struct {
	Generator  MazeGenerator    `yaml:"generator"`
	Player     MazePlayer       `yaml:"player"`
	Light      MazeLight        `yaml:"light"`
	Campaign   MazeCampaign     `yaml:"campaign"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeGenerator defines the path growth parameters of the first maze.
// Probabilities are percentages in [0, 100].
type MazeGenerator struct {
	Size    int `yaml:"size"`
	Twisty  int `yaml:"twisty"`
	Swirly  int `yaml:"swirly"`
	Branchy int `yaml:"branchy"`
}

// MazePlayer defines the battery and flashlight parameters.
type MazePlayer struct {
	Battery         int `yaml:"battery"`          // Charge at the start of every maze
	BoostMultiplier int `yaml:"boost_multiplier"` // Switch value while the flashlight is boosted
	DeadPercent     int `yaml:"dead_percent"`     // Battery percent at which the light dies
}

// MazeLight defines how light values map to what the player sees.
type MazeLight struct {
	DarkBelow float64 `yaml:"dark_below"` // Tiles below this are not drawn
	DimBelow  float64 `yaml:"dim_below"`  // Tiles below this are drawn dim
}

// MazeCampaign defines the campaign length.
type MazeCampaign struct {
	Levels int `yaml:"levels"` // Mazes to clear before the player wins
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "cleared" or "none"
	MaxAt int    `yaml:"max_at"` // Mazes cleared at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SizeGrowth       int `yaml:"size_growth"`       // Cells added to the maze side at max difficulty
	BranchyGrowth    int `yaml:"branchy_growth"`    // Branch chance added at max difficulty
	BatteryReduction int `yaml:"battery_reduction"` // Charge removed at max difficulty
}

// ErrInvalidConfig is returned when a loaded config cannot drive a game.
var ErrInvalidConfig = errors.New("invalid maze config")

// Validate checks the values the generator does not validate itself.
func (c MazeConfig) Validate() error {
	switch {
	case c.Player.Battery <= 0:
		return fmt.Errorf("player.battery must be positive, got %d: %w", c.Player.Battery, ErrInvalidConfig)
	case c.Player.BoostMultiplier < 1:
		return fmt.Errorf("player.boost_multiplier must be at least 1, got %d: %w", c.Player.BoostMultiplier, ErrInvalidConfig)
	case c.Player.DeadPercent < 0 || c.Player.DeadPercent >= 100:
		return fmt.Errorf("player.dead_percent must be in [0,100), got %d: %w", c.Player.DeadPercent, ErrInvalidConfig)
	case c.Light.DarkBelow > c.Light.DimBelow:
		return fmt.Errorf("light.dark_below %.2f above light.dim_below %.2f: %w", c.Light.DarkBelow, c.Light.DimBelow, ErrInvalidConfig)
	case c.Campaign.Levels < 1:
		return fmt.Errorf("campaign.levels must be at least 1, got %d: %w", c.Campaign.Levels, ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
