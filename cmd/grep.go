package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var grepCmd = &cobra.Command{
	Use:     "grep <pattern>...",
	Aliases: []string{"find", "search"},
	Short:   "Search for commands matching a pattern",
	Long: `Search saved commands. The pattern is split into keywords; a command
matches when every keyword appears (case-insensitively) in its text or
description. With --glob the pattern is matched as a glob against command
text instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGrep,
}

var grepGlob bool

func init() {
	grepCmd.Flags().BoolVar(&grepGlob, "glob", false, "Match the pattern as a glob against command text")
	rootCmd.AddCommand(grepCmd)
}

func runGrep(cmd *cobra.Command, args []string) error {
	return printMatches(strings.Join(args, " "), grepGlob)
}
