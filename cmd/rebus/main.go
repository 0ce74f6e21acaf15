// Rebus is a terminal letter puzzle: type the answer one cell at a time and
// each clue's box turns green once its letters are right.
//
// Usage:
//
//	rebus [--puzzle file.yaml] [--no-alt-screen] [--log-level debug]
//
// Running without a puzzle file plays the built-in Christmas rebus.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csheth/rebus/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rebus",
	Short: "Solve a letter rebus in the terminal",
	Long: `Plays a rebus: a row of clue sections, each a few single-letter cells.

Typing fills a cell and moves on; backspace steps back. A section turns
green when its letters are right and red when any is wrong. Solving every
section reveals the reward.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPuzzle,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rebus %s (commit: %s)\n", version.Version, version.Commit)
	},
}
