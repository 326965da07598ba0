package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trophy-runner/internal/games/runner"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Show the scoring object table",
	Long:  `Lists every falling object with its sprite and point value.`,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  %-15s  %-7s  %6s  %s\n", "Variant", "Class", "Points", "Sprite")
	fmt.Fprintf(out, "  %-15s  %-7s  %6s  %s\n", "-------", "-----", "------", "------")
	for _, v := range runner.Variants() {
		fmt.Fprintf(out, "  %-15s  %-7s  %+6d  %s\n", v.Name, v.Class, v.Points, v.Sprite)
	}
}
