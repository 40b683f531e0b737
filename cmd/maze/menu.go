package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty, then play",
	Long: `Opens an interactive picker for the game mode and difficulty preset,
then starts the game. Returning from a game shows the picker again.`,
	Annotations: map[string]string{fullScreen: "true"},
	RunE:        runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg := terminalConfig()
	maze.SetConfigPath(flagConfig)

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		maze.SetDifficultyPreset(string(result.Preset))
		if err := playGame(result.GameID, cfg); err != nil {
			return err
		}
	}
}
