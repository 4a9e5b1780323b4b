package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all saved commands",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, _, err := loadStore()
	if err != nil {
		return err
	}

	if st.Len() == 0 {
		fmt.Fprintln(out, "No commands saved.")
		return nil
	}

	commands := make([]string, 0, st.Len())
	for command := range st.Commands {
		commands = append(commands, command)
	}
	sort.Strings(commands)

	for _, command := range commands {
		description, _ := st.Get(command)
		fmt.Fprintln(out, formatEntry(command, description))
	}
	return nil
}
