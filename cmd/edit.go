package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nickcat1/keepc/internal/editor"
	"github.com/nickcat1/keepc/internal/execshell"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit commands in a text editor",
	Long: `Open all saved commands in your editor, one per line in the form

  <command>:::<description>

Edited lines replace the store wholesale: delete a line to delete the
command, change either side to update it. Lines without the ::: delimiter
are dropped. The editor comes from the config file, then $EDITOR, then ` + editor.DefaultProgram + `.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	st, path, err := loadStore()
	if err != nil {
		return err
	}

	dropped, err := editor.Session(st, execshell.InheritRunner{}, editor.Program(cfg.Editor))
	if err != nil {
		return err
	}
	for _, line := range dropped {
		logger.Warn("dropping malformed line", "line", line)
	}

	if err := st.Save(path); err != nil {
		return err
	}
	fmt.Fprintln(out, "Commands updated.")
	return nil
}
