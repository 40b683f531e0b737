package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode (default: maze).

Controls:
  W/A/S/D, arrows - Face a direction; press again to step
  Space           - Run along the corridor, turning at bends
  F               - Toggle the flashlight boost (8x brighter, 8x drain)
  Enter           - Next maze after a clear
  P               - Pause
  R               - Restart (after game over)
  ?               - Toggle full help
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Bigger battery, starts at the lowest difficulty
  normal - Starts at 30% difficulty, mazes grow as you clear them
  hard   - Smaller battery, starts at 70% difficulty
  fixed  - No progression, every maze uses the config as-is

Examples:
  maze play
  maze play maze_endless
  maze play --difficulty hard
  maze play --config ./my-maze.yaml --seed 42`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{fullScreen: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "maze"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'maze list' to see available games", gameID)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		// Fail before entering the alternate screen.
		if _, err := config.LoadMaze(flagConfig); err != nil {
			return err
		}
	}

	maze.SetConfigPath(flagConfig)
	maze.SetDifficultyPreset(flagDifficulty)

	return playGame(gameID, terminalConfig())
}

func playGame(gameID string, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
