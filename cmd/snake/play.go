package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start
  R            - Restart
  Tab          - High scores (when no game is running)
  Esc/B        - Back from high scores
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --tick 100
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	var logOut io.Writer = io.Discard
	if logFile, logErr := openLogFile(flagLogFile); logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}

	// Open score storage; the game still works without it.
	var scores tui.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		defer store.Close()
		scores = store
	}

	if err := tui.Run(cfg, rt, scores, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
