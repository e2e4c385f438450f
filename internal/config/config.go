// Package config reads the optional lazyfit configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config captures file-level settings. Command-line flags override these.
type Config struct {
	APIURL         string `toml:"api_url"`
	RefreshSeconds int    `toml:"refresh_seconds"`
}

// Default returns the built-in settings used when no file is present.
func Default() Config {
	return Config{
		RefreshSeconds: 60,
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lazyfit", "config.toml")
}

// Load reads the config file from its default location. A missing file is
// not an error; defaults apply.
func Load() (Config, error) {
	return LoadFrom(defaultConfigPath())
}

// LoadFrom reads the config file at the given path on top of the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.RefreshSeconds < 0 {
		cfg.RefreshSeconds = 0
	}
	return cfg, nil
}
