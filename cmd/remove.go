package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nickcat1/keepc/internal/prompt"
	"github.com/nickcat1/keepc/internal/search"
)

var removeCmd = &cobra.Command{
	Use:     "remove <pattern>...",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a saved command",
	Long: `Delete a saved command. Commands matching the pattern are listed with
numbers; enter a number to pick the one to delete. Anything that isn't a
listed number leaves the store untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	pattern := strings.Join(args, " ")
	st, path, err := loadStore()
	if err != nil {
		return err
	}

	matches := search.Match(pattern, st)
	if len(matches) == 0 {
		fmt.Fprintf(out, "No commands found matching '%s'\n", pattern)
		return nil
	}

	selected, ok := prompt.Select(prompt.NewStdinPrompter(), out, matches, entryRenderer(st), "delete")
	if !ok {
		return nil
	}

	st.Delete(selected)
	if err := st.Save(path); err != nil {
		return err
	}
	fmt.Fprintln(out, "Deleted command:", selected)
	return nil
}
