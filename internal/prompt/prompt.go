// Package prompt decouples interactive input from live terminals: the
// Prompter capability reads single lines, and Select implements the
// numbered disambiguation step used when a search matches more than one
// saved command.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter reads one line of user input after displaying a message.
type Prompter interface {
	ReadLine(message string) (string, error)
}

// StdinPrompter is the production Prompter: it writes the message to out
// and reads a single line from in, trimming surrounding whitespace. The
// reader is buffered once so consecutive prompts don't lose piped input.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinPrompter returns a Prompter wired to the process's stdin/stdout.
func NewStdinPrompter() *StdinPrompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// NewPrompter returns a Prompter over arbitrary streams.
func NewPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(in), out: out}
}

func (p *StdinPrompter) ReadLine(message string) (string, error) {
	fmt.Fprint(p.out, message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select presents matches as a numbered list on w, then reads one selection
// via p. The render func formats a single command for display. The second
// return is false when matches is empty or when the input is not an integer
// in [1, len(matches)]; invalid input is a silent no-op, not an error.
func Select(p Prompter, w io.Writer, matches []string, render func(string) string, verb string) (string, bool) {
	if len(matches) == 0 {
		return "", false
	}

	fmt.Fprintf(w, "Found %d matching commands:\n", len(matches))
	for i, cmd := range matches {
		fmt.Fprintf(w, "[%d] %s\n", i+1, render(cmd))
	}

	line, err := p.ReadLine(fmt.Sprintf("Enter a number to %s: ", verb))
	if err != nil {
		return "", false
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(matches) {
		return "", false
	}
	return matches[choice-1], true
}
