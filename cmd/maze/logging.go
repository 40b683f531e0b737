package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
)

var logFile *os.File

// fullScreen marks commands that own the terminal; their logs must not
// reach stderr or they would tear the alternate screen.
const fullScreen = "fullscreen"

// setupLogger builds the process logger from the global flags.
func setupLogger(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	case cmd.Annotations[fullScreen] != "":
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "maze",
	})
	maze.SetLogger(logger)
	return nil
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
