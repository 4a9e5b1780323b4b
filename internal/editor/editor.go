// Package editor implements bulk editing: the store is serialized to a
// temporary text file, an external editor is opened on it, and the edited
// file replaces the store wholesale.
package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/nickcat1/keepc/internal/execshell"
	"github.com/nickcat1/keepc/internal/store"
)

// Delimiter separates command from description on each line of the edit
// file. Only the first occurrence splits; later occurrences belong to the
// description.
const Delimiter = ":::"

// DefaultProgram is used when neither the config file nor $EDITOR names an
// editor.
const DefaultProgram = "nano"

// Program resolves the editor to launch: the configured override wins,
// then $EDITOR, then DefaultProgram.
func Program(override string) string {
	if override != "" {
		return override
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return DefaultProgram
}

// Serialize writes one line per entry, sorted by command text, in the form
// <command>:::<description>.
func Serialize(s *store.Store, w io.Writer) error {
	commands := make([]string, 0, s.Len())
	for cmd := range s.Commands {
		commands = append(commands, cmd)
	}
	sort.Strings(commands)

	for _, cmd := range commands {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", cmd, Delimiter, s.Commands[cmd]); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads edited lines back into a mapping. Each line is split on the
// first Delimiter; command and description are trimmed. Lines without the
// delimiter or with an empty command are dropped and returned so the
// caller can report them.
func Parse(r io.Reader) (commands map[string]string, dropped []string, err error) {
	commands = map[string]string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		cmd, desc, ok := strings.Cut(line, Delimiter)
		if ok {
			cmd = strings.TrimSpace(cmd)
		}
		if !ok || cmd == "" {
			if strings.TrimSpace(line) != "" {
				dropped = append(dropped, line)
			}
			continue
		}
		commands[cmd] = strings.TrimSpace(desc)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading edited file: %w", err)
	}
	return commands, dropped, nil
}

// Session round-trips the store through an external editor. The store is
// only replaced after the editor exits zero and the edited file parses;
// any earlier failure leaves it untouched. Returned dropped lines are
// non-blank lines the edit discarded as malformed.
func Session(s *store.Store, runner execshell.Runner, program string) (dropped []string, err error) {
	tmp, err := os.CreateTemp("", "keepc-edit-*.txt")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if err := Serialize(s, tmp); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("flushing temporary file: %w", err)
	}

	if err := runner.Run(program, path); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return nil, fmt.Errorf("opening editor %s: %w", program, err)
	}

	edited, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reopening temporary file after editing: %w", err)
	}
	defer edited.Close()

	commands, dropped, err := Parse(edited)
	if err != nil {
		return nil, err
	}
	s.Replace(commands)
	return dropped, nil
}
