package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.mixtaperc, $XDG_CONFIG_HOME/mixtape/config.toml,
// ~/.config/mixtape/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Path returns the config file that Load would read, or "" if none exists.
func Path() string {
	return findConfigFile()
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".mixtaperc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "mixtape", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Playlist
	if v := os.Getenv("MIXTAPE_PLAYLIST_SIZE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Playlist.Size = i
		}
	}
	if v := os.Getenv("MIXTAPE_PLAYLIST_FILE"); v != "" {
		cfg.Playlist.File = v
	}

	// Shuffle
	if v := os.Getenv("MIXTAPE_RANDOMNESS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Shuffle.Randomness = f
		}
	}
	if v := os.Getenv("MIXTAPE_BUFFER"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Shuffle.Buffer = i
		}
	}
	if v := os.Getenv("MIXTAPE_MIN_RECYCLE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Shuffle.MinRecycle = f
		}
	}

	// Simulate
	if v := os.Getenv("MIXTAPE_PLAYS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Simulate.Plays = i
		}
	}
	if v := os.Getenv("MIXTAPE_SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Simulate.Seed = i
		}
	}

	// TUI
	if v := os.Getenv("MIXTAPE_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("MIXTAPE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
