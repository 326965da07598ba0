package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trophy-runner/internal/assets"
	"github.com/vovakirdan/trophy-runner/internal/games/runner"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite ids of the sprite sheet",
	Long: `Lists every sprite the sheet defines (the embedded one, or --sprites)
and reports variant sprites the sheet is missing. Missing sprites are
never drawn and never collide.`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func runSprites(cmd *cobra.Command, _ []string) error {
	var (
		catalog *assets.Catalog
		err     error
	)
	if flagSprites != "" {
		catalog, err = assets.LoadFile(flagSprites, nil)
	} else {
		catalog, err = assets.Default(nil)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ids := catalog.IDs()
	defined := make(map[string]bool, len(ids))
	for _, id := range ids {
		defined[id] = true
		fmt.Fprintf(out, "  %s\n", id)
	}

	for _, v := range runner.Variants() {
		if !defined[v.Sprite] {
			fmt.Fprintf(out, "missing: %s (%s)\n", v.Sprite, v.Name)
		}
	}
	return nil
}
