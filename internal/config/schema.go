package config

// Config is the root configuration structure.
type Config struct {
	Playlist PlaylistConfig `toml:"playlist"`
	Shuffle  ShuffleConfig  `toml:"shuffle"`
	Simulate SimulateConfig `toml:"simulate"`
	Play     PlayConfig     `toml:"play"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// PlaylistConfig holds the default track source.
type PlaylistConfig struct {
	Size int    `toml:"size"`
	File string `toml:"file"`
}

// ShuffleConfig holds the reordering parameters.
type ShuffleConfig struct {
	Randomness float64 `toml:"randomness"`
	Buffer     int     `toml:"buffer"`
	MinRecycle float64 `toml:"min_recycle"`
}

// SimulateConfig holds batch-simulation settings.
type SimulateConfig struct {
	Plays int   `toml:"plays"`
	Seed  int64 `toml:"seed"`
}

// PlayConfig holds settings for streaming play mode.
type PlayConfig struct {
	Interval   int    `toml:"interval"`
	Timestamps bool   `toml:"timestamps"`
	ShowRank   bool   `toml:"show_rank"`
	Template   string `toml:"template"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval int    `toml:"refresh_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}
