// Package config loads runner settings from an optional TOML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// DefaultInputDir is where personal inputs are looked up when nothing else
// is configured.
const DefaultInputDir = "data/inputs"

// Config holds the runner settings.
type Config struct {
	// InputDir holds personal inputs named 01.txt, 02.txt, ...
	InputDir string `toml:"input_dir" env:"ADVENT_INPUT_DIR"`
	// Verbose switches logging to debug level.
	Verbose bool `toml:"verbose" env:"ADVENT_VERBOSE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{InputDir: DefaultInputDir}
}

// Load returns Default overlaid with the TOML file at path, then with the
// environment. An empty path or a missing file skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}

	return cfg, nil
}
