package cli

import "testing"

func TestShuffleDefaults(t *testing.T) {
	got := shuffleDefaults()
	want := "randomness 0.05, buffer 4, min recycle 0.2"
	if got != want {
		t.Errorf("shuffleDefaults() = %q, want %q", got, want)
	}
}
