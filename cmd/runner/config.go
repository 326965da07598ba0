package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trophy-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner config",
	Long: `Prints the built-in runner config as YAML. Save it to
~/.runner/configs/runner.yaml or ./configs/runner.yaml, or pass it with
--config, to override individual values.

Example:
  runner config > ./configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
