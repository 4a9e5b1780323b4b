package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nickcat1/keepc/internal/execshell"
	"github.com/nickcat1/keepc/internal/prompt"
	"github.com/nickcat1/keepc/internal/search"
)

var runCmd = &cobra.Command{
	Use:     "run <pattern>...",
	Aliases: []string{"execute"},
	Short:   "Execute a saved command",
	Long: `Execute a saved command through the shell. Commands matching the pattern
are listed with numbers; enter a number to pick the one to run. The
command inherits the terminal, so interactive programs work normally.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	pattern := strings.Join(args, " ")
	st, _, err := loadStore()
	if err != nil {
		return err
	}

	matches := search.Match(pattern, st)
	if len(matches) == 0 {
		fmt.Fprintf(out, "No commands found matching '%s'\n", pattern)
		return nil
	}

	selected, ok := prompt.Select(prompt.NewStdinPrompter(), out, matches, entryRenderer(st), "execute")
	if !ok {
		return nil
	}

	fmt.Fprintln(out, "Executing:", selected)
	shell, flag := execshell.Shell(cfg.Shell)
	if err := (execshell.InheritRunner{}).Run(shell, flag, selected); err != nil {
		if status := execshell.ExitStatus(err); status >= 0 {
			return fmt.Errorf("command exited with status %d", status)
		}
		return fmt.Errorf("executing %q: %w", selected, err)
	}
	return nil
}
