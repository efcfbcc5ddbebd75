package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Playlist.Size != 10 {
		t.Errorf("Playlist.Size = %d, want 10", cfg.Playlist.Size)
	}
	if cfg.Shuffle.Randomness != 0.05 {
		t.Errorf("Shuffle.Randomness = %g, want 0.05", cfg.Shuffle.Randomness)
	}
	if cfg.Shuffle.Buffer != 4 {
		t.Errorf("Shuffle.Buffer = %d, want 4", cfg.Shuffle.Buffer)
	}
	if cfg.Shuffle.MinRecycle != 0.2 {
		t.Errorf("Shuffle.MinRecycle = %g, want 0.2", cfg.Shuffle.MinRecycle)
	}
	if cfg.Simulate.Plays != 1000 {
		t.Errorf("Simulate.Plays = %d, want 1000", cfg.Simulate.Plays)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestApplyDefaultsKeepsSetValues(t *testing.T) {
	cfg := &Config{}
	cfg.Shuffle.Randomness = 0.3
	cfg.Playlist.Size = 42
	cfg.ApplyDefaults()

	if cfg.Shuffle.Randomness != 0.3 {
		t.Errorf("Shuffle.Randomness = %g, want 0.3", cfg.Shuffle.Randomness)
	}
	if cfg.Playlist.Size != 42 {
		t.Errorf("Playlist.Size = %d, want 42", cfg.Playlist.Size)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[shuffle]
randomness = 0.1
buffer = 2
min_recycle = 0.5

[simulate]
plays = 250
seed = 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Shuffle.Randomness != 0.1 || cfg.Shuffle.Buffer != 2 || cfg.Shuffle.MinRecycle != 0.5 {
		t.Errorf("shuffle section = %+v, want randomness 0.1, buffer 2, min_recycle 0.5", cfg.Shuffle)
	}
	if cfg.Simulate.Plays != 250 || cfg.Simulate.Seed != 7 {
		t.Errorf("simulate section = %+v, want plays 250, seed 7", cfg.Simulate)
	}
	// Unset sections still get defaults.
	if cfg.Playlist.Size != 10 {
		t.Errorf("Playlist.Size = %d, want default 10", cfg.Playlist.Size)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MIXTAPE_RANDOMNESS", "0.25")
	t.Setenv("MIXTAPE_BUFFER", "0")
	t.Setenv("MIXTAPE_PLAYS", "99")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Shuffle.Randomness != 0.25 {
		t.Errorf("Shuffle.Randomness = %g, want 0.25", cfg.Shuffle.Randomness)
	}
	if cfg.Shuffle.Buffer != 0 {
		t.Errorf("Shuffle.Buffer = %d, want 0", cfg.Shuffle.Buffer)
	}
	if cfg.Simulate.Plays != 99 {
		t.Errorf("Simulate.Plays = %d, want 99", cfg.Simulate.Plays)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "negative randomness",
			mutate: func(c *Config) { c.Shuffle.Randomness = -1 },
			want:   "shuffle",
		},
		{
			name:   "min_recycle above one",
			mutate: func(c *Config) { c.Shuffle.MinRecycle = 2 },
			want:   "shuffle",
		},
		{
			name:   "negative plays",
			mutate: func(c *Config) { c.Simulate.Plays = -5 },
			want:   "simulate",
		},
		{
			name:   "bad theme",
			mutate: func(c *Config) { c.TUI.Theme = "solarized" },
			want:   "tui",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Log.Level = "trace" },
			want:   "log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
