package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trophy-runner/internal/core"
	"github.com/vovakirdan/trophy-runner/internal/frame"
	"github.com/vovakirdan/trophy-runner/internal/games/runner"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagWidth     int
	flagHeight    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the runner headless and print statistics",
	Long: `Steps the runner for a fixed number of frames without a terminal UI.
Frames are driven synthetically, so the run finishes as fast as the CPU
allows. Without --autopilot the player stays in the middle lane.

Examples:
  runner simulate --frames 6000
  runner simulate --frames 6000 --autopilot --seed 42
  runner simulate --log-level debug   # log every spawn, catch and exit`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	defaults := core.DefaultConfig()
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 6000, "Number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer the player automatically")
	simulateCmd.Flags().IntVar(&flagWidth, "width", defaults.ScreenW, "Display width in cells")
	simulateCmd.Flags().IntVar(&flagHeight, "height", defaults.ScreenH, "Display height in cells")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	runner.SetLogger(logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := runner.New()
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     seed,
	})

	var input frame.InputSource
	if flagAutopilot {
		input = runner.NewAutoPilot(game).Next
	}

	sched := frame.NewManualScheduler()
	loop := frame.NewLoop(game, sched, input, nil, logger)
	loop.Start()
	ran := sched.Advance(flagFrames)

	printSimulation(cmd, game, seed, ran)
	return nil
}

func printSimulation(cmd *cobra.Command, game *runner.Game, seed int64, frames int) {
	out := cmd.OutOrStdout()
	field := game.Playfield()
	stats := game.Stats()

	fmt.Fprintf(out, "Seed:      %d\n", seed)
	fmt.Fprintf(out, "Playfield: %dx%d px\n", field.Width, field.Height)
	fmt.Fprintf(out, "Frames:    %d\n", frames)
	fmt.Fprintf(out, "Score:     %d\n", game.Score())
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-15s  %7s  %9s  %6s\n", "Variant", "Spawned", "Collected", "Exited")
	fmt.Fprintf(out, "  %-15s  %7s  %9s  %6s\n", "-------", "-------", "---------", "------")
	for _, v := range runner.Variants() {
		ks := stats.ByKind[v.Kind]
		fmt.Fprintf(out, "  %-15s  %7d  %9d  %6d\n", v.Name, ks.Spawned, ks.Collected, ks.Exited)
	}
	total := stats.Total()
	fmt.Fprintf(out, "  %-15s  %7d  %9d  %6d\n", "total", total.Spawned, total.Collected, total.Exited)
}
