// Package store manages the on-disk mapping of saved commands. The whole
// store is loaded at the start of an invocation and, if mutated, written
// back in full; there is no locking, so concurrent invocations are
// last-writer-wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNoConfigDir means the per-user config location could not be resolved.
	ErrNoConfigDir = errors.New("could not determine config directory")
	// ErrCorrupt means the commands file exists but could not be parsed.
	ErrCorrupt = errors.New("commands file is corrupt")
	// ErrWrite means the commands file or its directory could not be written.
	ErrWrite = errors.New("could not write commands file")
)

// Store maps command text to its description. Command text is the unique
// key; descriptions may be empty.
type Store struct {
	Commands map[string]string `json:"commands"`
}

// New returns an empty store.
func New() *Store {
	return &Store{Commands: map[string]string{}}
}

// DefaultPath returns the per-user location of the commands file,
// <config-dir>/keepc/commands.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "keepc", "commands.json"), nil
}

// Load reads the store at path. A missing file is not an error and yields
// an empty store; a file that cannot be parsed fails with ErrCorrupt.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}
	if s.Commands == nil {
		s.Commands = map[string]string{}
	}
	return &s, nil
}

// Save writes the full store to path, creating parent directories as
// needed. The file is written to a temporary sibling and renamed so a
// failed write never leaves a truncated store behind.
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, dir, err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".commands-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	// CreateTemp makes the file 0600; restore the usual mode before it
	// becomes commands.json.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Set inserts a command, overwriting any existing description for the same
// command text.
func (s *Store) Set(command, description string) {
	s.Commands[command] = description
}

// Get returns the description for a command and whether it exists.
func (s *Store) Get(command string) (string, bool) {
	desc, ok := s.Commands[command]
	return desc, ok
}

// Delete removes a command. Deleting an absent command is a no-op.
func (s *Store) Delete(command string) {
	delete(s.Commands, command)
}

// Replace swaps in a brand-new mapping, discarding all current entries.
// Used by bulk edit, where the edited file is the new source of truth.
func (s *Store) Replace(commands map[string]string) {
	if commands == nil {
		commands = map[string]string{}
	}
	s.Commands = commands
}

// Len returns the number of saved commands.
func (s *Store) Len() int {
	return len(s.Commands)
}
