// Package config loads optional user settings from a TOML file next to the
// commands file. Everything has a working default; the file's absence is
// normal.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes accepted in the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user settings from <config-dir>/keepc/config.toml.
type Config struct {
	// Editor overrides $EDITOR for bulk edit.
	Editor string `toml:"editor"`
	// Shell overrides the interpreter used by run (invoked as <shell> -c).
	Shell string `toml:"shell"`
	// Color is one of auto, always, never.
	Color string `toml:"color"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// DefaultPath returns the config file location, derived from the directory
// holding the commands file.
func DefaultPath(commandsFile string) string {
	return filepath.Join(filepath.Dir(commandsFile), "config.toml")
}

// Load reads the config at path. A missing file yields defaults; a file
// that cannot be parsed or that names an unknown color mode is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	switch cfg.Color {
	case "":
		cfg.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid color mode %q in %s (expected auto, always, or never)", cfg.Color, path)
	}
	return cfg, nil
}
