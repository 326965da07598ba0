// runner is a terminal lane runner: catch trophies, dodge hazards.
//
// Usage:
//
//	runner play [game]       - Play interactively (default: runner)
//	runner simulate          - Run headless for a number of frames
//	runner list              - List available games
//	runner variants          - Show the scoring object table
//	runner sprites           - List sprite ids of the sprite sheet
//	runner config            - Print the default runner config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom runner config YAML
//	--sprites <path>      - Custom sprite sheet YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trophy-runner/internal/config"
	"github.com/vovakirdan/trophy-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSprites  string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Trophy Runner - catch trophies in your terminal",
	Long: `Trophy Runner is a three-lane runner for the terminal.
Trophies and hazards fall down the lanes; switch lanes to catch the
trophies and let the hazards pass.

Available commands:
  play      - Play interactively
  simulate  - Run headless and print statistics
  list      - Show all available games
  variants  - Show scoring object values
  sprites   - List sprite ids of the sprite sheet
  config    - Print the default runner config

Examples:
  runner play
  runner play --seed 42 --log-file runner.log --log-level debug
  runner simulate --frames 6000 --autopilot
  runner variants`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Fail early on a broken --config; the game itself would fall back
		// to defaults with only a log line.
		if flagConfig != "" {
			if _, err := config.LoadRunner(flagConfig); err != nil {
				return err
			}
		}
		runner.SetConfigPath(flagConfig)
		runner.SetSpritesPath(flagSprites)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger. Logs go to --log-file when set, else to
// fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closer, nil
}
