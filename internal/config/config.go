// Package config loads the optional .lolcode.yaml file that seeds default
// CLI flag values. It is deliberately small: there is no program-level
// configuration here, only presentation defaults for the run command.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the presentation defaults the CLI falls back to when a
// flag isn't explicitly set. CLI flags always take precedence over these.
// Color is read from the file but no command consults it.
type Config struct {
	Color       bool `yaml:"color"`
	ShowLexemes bool `yaml:"showLexemes"`
	ShowSymbols bool `yaml:"showSymbols"`
	JSONOutput  bool `yaml:"jsonOutput"`
}

// Load reads path and parses it as YAML. A missing file is not an error;
// it returns a zero-value Config so callers can treat "no config" and "an
// empty config" identically. A malformed file is a usage error, distinct
// from the interpreter's own Error 01-48 catalog.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns $HOME/.lolcode.yaml, or "" if $HOME can't be
// resolved. Callers treat an unresolvable default path the same as a
// missing file: fall back to built-in defaults silently.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.lolcode.yaml"
}
