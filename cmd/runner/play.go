package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trophy-runner/internal/core"
	"github.com/vovakirdan/trophy-runner/internal/games/runner"
	"github.com/vovakirdan/trophy-runner/internal/platform/tui"
	"github.com/vovakirdan/trophy-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start an interactive session. The playfield is sized from the
terminal once at startup and stays fixed; resizing only recenters it.

Controls:
  Left/A     - Left lane
  Up/W       - Middle lane
  Right/D    - Right lane
  Ctrl+S     - Save a screenshot to ~/.runner/screenshots
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is set, since the game owns the
terminal.

Examples:
  runner play
  runner play runner --seed 7
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "runner"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'runner list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	runner.SetLogger(logger)

	// Measure the terminal once; the playfield is fixed from here on
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h - 3 // Border and help line
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting session", "game", gameID, "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", flagFPS)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
