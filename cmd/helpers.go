package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nickcat1/keepc/internal/config"
	"github.com/nickcat1/keepc/internal/search"
	"github.com/nickcat1/keepc/internal/store"
)

// logger writes diagnostics to stderr; command results go to out.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// out is the destination for command output (listings, search results).
// Tests swap it for a buffer.
var out io.Writer = os.Stdout

var (
	cfg          = config.Default()
	colorEnabled bool
)

var (
	commandStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// setup loads the optional config file and resolves the color mode. It
// runs before every subcommand. A broken config file is reported and
// ignored rather than blocking the invocation.
func setup(cmd *cobra.Command, args []string) {
	if path, err := store.DefaultPath(); err == nil {
		loaded, err := config.Load(config.DefaultPath(path))
		if err != nil {
			logger.Warn("ignoring config file", "err", err)
		} else {
			cfg = loaded
		}
	}
	colorEnabled = resolveColor(cfg.Color)
}

func resolveColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// loadStore resolves the commands file path and loads the store from it.
func loadStore() (*store.Store, string, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return nil, "", err
	}
	st, err := store.Load(path)
	if err != nil {
		return nil, "", err
	}
	return st, path, nil
}

// formatEntry renders a saved command for listing, shell-prompt style.
func formatEntry(command, description string) string {
	if !colorEnabled {
		return fmt.Sprintf("$ %s: %s", command, description)
	}
	return "$ " + commandStyle.Render(command) + descriptionStyle.Render(": "+description)
}

// entryRenderer returns the render func used by the selector's numbered
// list, looking up each command's description in st.
func entryRenderer(st *store.Store) func(string) string {
	return func(command string) string {
		description, _ := st.Get(command)
		if !colorEnabled {
			return fmt.Sprintf("%s: %s", command, description)
		}
		return commandStyle.Render(command) + descriptionStyle.Render(": "+description)
	}
}

// printMatches searches the store and prints each match, or a not-found
// message. Shared by grep and the root fallback.
func printMatches(pattern string, useGlob bool) error {
	st, _, err := loadStore()
	if err != nil {
		return err
	}

	var matches []string
	if useGlob {
		matches, err = search.MatchGlob(pattern, st)
		if err != nil {
			return err
		}
	} else {
		matches = search.Match(pattern, st)
	}

	if len(matches) == 0 {
		fmt.Fprintf(out, "No commands found matching '%s'\n", pattern)
		return nil
	}
	for _, command := range matches {
		description, _ := st.Get(command)
		fmt.Fprintln(out, formatEntry(command, description))
	}
	return nil
}
