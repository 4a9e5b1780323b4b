// Package execshell spawns external processes (the shell for saved
// commands, the editor for bulk edit) behind a Runner capability so the
// commands that use them stay testable.
package execshell

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
)

// Runner runs an external program to completion. A nil return means the
// process exited zero; a non-zero exit surfaces as *exec.ExitError.
type Runner interface {
	Run(name string, args ...string) error
}

// InheritRunner runs processes with the parent's stdin, stdout, and stderr
// so interactive commands and editors behave normally.
type InheritRunner struct{}

func (InheritRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Shell returns the command interpreter and its command flag. An override
// from configuration takes precedence; otherwise sh -c, or cmd /C where no
// POSIX shell exists.
func Shell(override string) (name, flag string) {
	if override != "" {
		return override, "-c"
	}
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

// ExitStatus extracts the child's exit code from a Runner error, or -1 if
// the error was not a non-zero exit.
func ExitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
