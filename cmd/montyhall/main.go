// Package main provides the montyhall command: a narrated Monty Hall
// playthrough by default, and single silent trials for aggregation drivers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "montyhall",
		Short: "Play the Monty Hall problem",
		Long: "Plays one narrated round of the Monty Hall problem: pick a door, watch the host open a goat door, " +
			"then decide whether to stay or switch.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	root.PersistentFlags().Bool("no-pause", false, "Disable dramatic pauses")
	root.PersistentFlags().Bool("no-color", false, "Disable ANSI colors")

	root.AddCommand(newTrialCmd())
	return root
}
