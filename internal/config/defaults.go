package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Generator: MazeGenerator{
			Size:    40,
			Twisty:  70,
			Swirly:  50,
			Branchy: 30,
		},
		Player: MazePlayer{
			Battery:         8000,
			BoostMultiplier: 8,
			DeadPercent:     5,
		},
		Light: MazeLight{
			DarkBelow: 1,
			DimBelow:  3,
		},
		Campaign: MazeCampaign{
			Levels: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "cleared",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SizeGrowth:       30,
				BranchyGrowth:    30,
				BatteryReduction: 2000,
			},
		},
	}
}
