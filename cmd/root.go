package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keepc [pattern...]",
	Short: "Keep and manage useful commands",
	Long: `keepc stores short shell commands with optional descriptions in a local
JSON file under your config directory. Add commands as you discover them,
then search, re-run, or bulk-edit them later.

Running keepc with anything that isn't a subcommand searches your saved
commands, so "keepc docker logs" just works.`,
	Args:             cobra.ArbitraryArgs,
	PersistentPreRun: setup,
	RunE:             runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runRoot implements the fallback mode: arguments that don't name a
// subcommand are treated as a free-text search over saved commands.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return printMatches(strings.Join(args, " "), false)
}
