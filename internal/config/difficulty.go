package config

import "github.com/vovakirdan/tui-maze/internal/core"

// Lower bounds that keep scaled mazes playable.
const (
	minScaledSize    = 10
	minScaledBattery = 1000
)

// DifficultyManager calculates maze parameters from campaign progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after cleared mazes.
func (d *DifficultyManager) Level(cleared int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	if d.cfg.Progression.Type != "cleared" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := core.ClampF(float64(cleared)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Size returns the side length of the next maze.
func (d *DifficultyManager) Size(baseSize int, cleared int) int {
	level := d.Level(cleared)
	// Mazes grow as difficulty increases
	return max(baseSize+int(level*float64(d.cfg.Scaling.SizeGrowth)), min(baseSize, minScaledSize))
}

// Branchy returns the branch chance of the next maze, capped at 100.
func (d *DifficultyManager) Branchy(baseBranchy int, cleared int) int {
	level := d.Level(cleared)
	result := baseBranchy + int(level*float64(d.cfg.Scaling.BranchyGrowth))
	return min(max(result, 0), 100)
}

// Battery returns the charge the player starts the next maze with.
func (d *DifficultyManager) Battery(baseBattery int, cleared int) int {
	level := d.Level(cleared)
	// Less light as difficulty increases
	result := baseBattery - int(level*float64(d.cfg.Scaling.BatteryReduction))
	return max(result, min(baseBattery, minScaledBattery))
}
