package cli

import (
	"testing"

	"mixtape/internal/config"
	"mixtape/internal/shuffle"
	"mixtape/internal/wizard"
)

func TestApplyShufflePreset(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		want   shuffle.Params
	}{
		{"standard", presetStandard, shuffle.DefaultParams()},
		{"fresh", presetFresh, shuffle.Params{Randomness: 0.02, Buffer: 8, MinRecycle: 0.1}},
		{"true random", presetTrueRandom, shuffle.TrueRandomParams()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			applyShufflePreset(c, tt.preset)

			if got := c.Shuffle.Params(); got != tt.want {
				t.Errorf("Params() = %+v, want %+v", got, tt.want)
			}
			if err := c.Shuffle.Params().Validate(); err != nil {
				t.Errorf("preset %q produced invalid parameters: %v", tt.preset, err)
			}
		})
	}

	t.Run("unknown preset leaves config untouched", func(t *testing.T) {
		c := config.Default()
		applyShufflePreset(c, "bogus")
		if got, want := c.Shuffle.Params(), shuffle.DefaultParams(); got != want {
			t.Errorf("Params() = %+v, want defaults %+v", got, want)
		}
	})
}

func TestInitFormOptions(t *testing.T) {
	sizes := playlistSizeOptions()
	presets := wizard.Presets()
	if len(sizes) != len(presets) {
		t.Fatalf("playlistSizeOptions() has %d options, want %d", len(sizes), len(presets))
	}
	for i, opt := range sizes {
		if opt.Value != presets[i].Size {
			t.Errorf("option %d = %d, want %d", i, opt.Value, presets[i].Size)
		}
	}

	seen := make(map[string]bool)
	for _, opt := range shufflePresetOptions() {
		seen[opt.Value] = true
	}
	for _, want := range []string{presetStandard, presetFresh, presetTrueRandom} {
		if !seen[want] {
			t.Errorf("shufflePresetOptions() missing %q", want)
		}
	}
}
