package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Playlist.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("playlist: %w", err))
	}
	if err := c.Shuffle.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("shuffle: %w", err))
	}
	if err := c.Simulate.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("simulate: %w", err))
	}
	if err := c.Play.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("play: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks PlaylistConfig for errors.
func (c *PlaylistConfig) Validate() error {
	if c.Size < 0 {
		return errors.New("size must be non-negative")
	}
	return nil
}

// Validate checks ShuffleConfig for errors.
func (c *ShuffleConfig) Validate() error {
	return c.Params().Validate()
}

// Validate checks SimulateConfig for errors.
func (c *SimulateConfig) Validate() error {
	if c.Plays < 0 {
		return errors.New("plays must be non-negative")
	}
	return nil
}

// Validate checks PlayConfig for errors.
func (c *PlayConfig) Validate() error {
	if c.Interval < 0 {
		return errors.New("interval must be non-negative")
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	if c.RefreshInterval < 0 {
		return errors.New("refresh_interval must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
