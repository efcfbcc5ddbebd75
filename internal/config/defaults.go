package config

import "mixtape/internal/shuffle"

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Playlist: PlaylistConfig{
			Size: 10,
		},
		Shuffle: ShuffleConfig{
			Randomness: shuffle.DefaultRandomness,
			Buffer:     shuffle.DefaultBuffer,
			MinRecycle: shuffle.DefaultMinRecycle,
		},
		Simulate: SimulateConfig{
			Plays: 1000,
		},
		Play: PlayConfig{
			Interval: 2000,
		},
		TUI: TUIConfig{
			Theme:           "auto",
			RefreshInterval: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Playlist
	if c.Playlist.Size == 0 {
		c.Playlist.Size = d.Playlist.Size
	}

	// Shuffle. A zero buffer cannot be distinguished from an unset one
	// here; use the --buffer flag or min_recycle = 1.0 for true-random
	// mode.
	if c.Shuffle.Randomness == 0 {
		c.Shuffle.Randomness = d.Shuffle.Randomness
	}
	if c.Shuffle.Buffer == 0 {
		c.Shuffle.Buffer = d.Shuffle.Buffer
	}
	if c.Shuffle.MinRecycle == 0 {
		c.Shuffle.MinRecycle = d.Shuffle.MinRecycle
	}

	// Simulate
	if c.Simulate.Plays == 0 {
		c.Simulate.Plays = d.Simulate.Plays
	}

	// Play
	if c.Play.Interval == 0 {
		c.Play.Interval = d.Play.Interval
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Params converts the shuffle section into session parameters.
func (c *ShuffleConfig) Params() shuffle.Params {
	return shuffle.Params{
		Randomness: c.Randomness,
		Buffer:     c.Buffer,
		MinRecycle: c.MinRecycle,
	}
}
