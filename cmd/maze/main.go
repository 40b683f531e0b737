// maze is a flashlight maze crawler for the terminal.
//
// Usage:
//
//	maze list              - List available game modes
//	maze play [game]       - Play a game mode (default: maze)
//	maze menu              - Pick a mode and difficulty interactively
//	maze gen               - Print a generated maze as text
//	maze light <file|->    - Print the light map of a text maze
//
// Global flags:
//
//	--fps <rate>          - Set input tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible mazes
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file (play and menu log nowhere by default)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/telemetry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

var (
	logger            = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	shutdownTelemetry = func(context.Context) error { return nil }
)

func main() {
	// .env is optional; it usually carries OTEL_* settings.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Flashlight Maze - find your way out in the dark",
	Long: `Flashlight Maze drops you into a randomly grown maze with nothing but a
battery powered flashlight. The beam lights the corridor ahead and fades
with distance; boosting it drains the battery eight times faster.

Available commands:
  list     - Show all game modes
  play     - Play a game mode directly
  menu     - Interactive mode and difficulty picker
  gen      - Print a generated maze
  light    - Print the light map of a maze file

Examples:
  maze play
  maze play maze_endless --difficulty hard
  maze gen --size 30 --seed 42
  maze gen --seed 42 | maze light - --power 40`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(cmd); err != nil {
			return err
		}

		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			logger.Warn("telemetry setup failed, running without traces", "err", err)
		}
		shutdownTelemetry = shutdown
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "err", err)
		}
		return closeLogFile()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Input tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(lightCmd)
}
