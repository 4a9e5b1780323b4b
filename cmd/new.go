package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nickcat1/keepc/internal/prompt"
)

var newCmd = &cobra.Command{
	Use:     "new [command] [description]",
	Aliases: []string{"add"},
	Short:   "Add a new command",
	Long: `Add a new command to the store. Command and description may be given as
arguments; whichever is missing is prompted for. Adding a command that
already exists replaces its description.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	st, path, err := loadStore()
	if err != nil {
		return err
	}

	command, description, err := readEntry(args, prompt.NewStdinPrompter())
	if err != nil {
		return err
	}

	st.Set(command, description)
	return st.Save(path)
}

// readEntry fills in command and description from args, prompting for
// whichever is missing. An empty command after prompting is an error; an
// empty description is fine.
func readEntry(args []string, p prompt.Prompter) (command, description string, err error) {
	if len(args) > 0 {
		command = args[0]
	} else {
		command, err = p.ReadLine("Enter command: ")
		if err != nil {
			return "", "", fmt.Errorf("reading command: %w", err)
		}
	}
	command = strings.TrimSpace(command)
	if command == "" {
		return "", "", errors.New("command cannot be empty")
	}

	if len(args) > 1 {
		description = args[1]
	} else {
		description, err = p.ReadLine("Enter description (optional): ")
		if err != nil {
			return "", "", fmt.Errorf("reading description: %w", err)
		}
	}
	return command, strings.TrimSpace(description), nil
}
