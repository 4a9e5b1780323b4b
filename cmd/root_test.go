package cmd

import (
	"runtime"
	"strings"
	"testing"

	"github.com/nickcat1/keepc/internal/store"
)

// seedStore writes entries to the default commands file, which tests point
// into a temp dir via XDG_CONFIG_HOME.
func seedStore(t *testing.T, entries map[string]string) {
	t.Helper()
	path, err := store.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	st := store.New()
	for command, description := range entries {
		st.Set(command, description)
	}
	if err := st.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}
}

// captureOutput redirects command output to a buffer for the test.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var buf strings.Builder
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func setupFakeConfigDir(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME does not redirect os.UserConfigDir on this platform")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	colorEnabled = false
}

func TestRunRootFallbackSearch(t *testing.T) {
	setupFakeConfigDir(t)
	seedStore(t, map[string]string{
		"git status": "repo state",
		"ls -la":     "list files",
	})
	buf := captureOutput(t)

	if err := runRoot(rootCmd, []string{"git"}); err != nil {
		t.Fatalf("runRoot error: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "$ git status: repo state") {
		t.Errorf("fallback search output missing match:\n%s", got)
	}
	if strings.Contains(got, "ls -la") {
		t.Errorf("fallback search printed non-matching entry:\n%s", got)
	}
}

func TestRunRootFallbackMultiWordPattern(t *testing.T) {
	setupFakeConfigDir(t)
	seedStore(t, map[string]string{
		"git status": "repo state",
		"git push":   "publish commits",
	})
	buf := captureOutput(t)

	// Both words must match, across command text and description.
	if err := runRoot(rootCmd, []string{"git", "repo"}); err != nil {
		t.Fatalf("runRoot error: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "$ git status: repo state") {
		t.Errorf("output missing match:\n%s", got)
	}
	if strings.Contains(got, "git push") {
		t.Errorf("output has entry not matching every keyword:\n%s", got)
	}
}

func TestRunRootFallbackNoMatch(t *testing.T) {
	setupFakeConfigDir(t)
	seedStore(t, map[string]string{"git status": "repo state"})
	buf := captureOutput(t)

	if err := runRoot(rootCmd, []string{"kubectl", "pods"}); err != nil {
		t.Fatalf("runRoot error: %v", err)
	}

	want := "No commands found matching 'kubectl pods'\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintMatchesMissingStoreFile(t *testing.T) {
	setupFakeConfigDir(t)
	buf := captureOutput(t)

	// No store file saved: load yields an empty store, not an error.
	if err := printMatches("anything", false); err != nil {
		t.Fatalf("printMatches error: %v", err)
	}
	if !strings.Contains(buf.String(), "No commands found matching 'anything'") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintMatchesGlob(t *testing.T) {
	setupFakeConfigDir(t)
	seedStore(t, map[string]string{
		"git status": "repo state",
		"ls -la":     "list files",
	})
	buf := captureOutput(t)

	if err := printMatches("git*", true); err != nil {
		t.Fatalf("printMatches error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "$ git status: repo state") {
		t.Errorf("glob output missing match:\n%s", got)
	}
	if strings.Contains(got, "ls -la") {
		t.Errorf("glob output has non-matching entry:\n%s", got)
	}

	if err := printMatches("[unclosed", true); err == nil {
		t.Error("expected error for invalid glob pattern")
	}
}
