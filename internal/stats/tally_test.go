package stats

import (
	"math"
	"testing"
)

func TestTallyCounts(t *testing.T) {
	tally := NewTally()
	for _, id := range []string{"a", "b", "a", "c", "a", "b"} {
		tally.Record(id)
	}

	if got := tally.Plays(); got != 6 {
		t.Errorf("Plays() = %d, want 6", got)
	}

	tests := []struct {
		id   string
		want int
	}{
		{"a", 3},
		{"b", 2},
		{"c", 1},
		{"never-played", 0},
	}
	for _, tt := range tests {
		if got := tally.Count(tt.id); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestTallyGaps(t *testing.T) {
	tally := NewTally()
	// a plays at 1, 3, 5 (gaps 2, 2); b plays at 2, 6 (gap 4).
	for _, id := range []string{"a", "b", "a", "c", "a", "b"} {
		tally.Record(id)
	}

	gaps := tally.Gaps()
	if gaps.Count != 3 {
		t.Fatalf("Gaps().Count = %d, want 3", gaps.Count)
	}
	if gaps.Min != 2 || gaps.Max != 4 {
		t.Errorf("Gaps() min/max = %d/%d, want 2/4", gaps.Min, gaps.Max)
	}
	wantMean := 8.0 / 3.0
	if math.Abs(gaps.Mean-wantMean) > 1e-9 {
		t.Errorf("Gaps().Mean = %g, want %g", gaps.Mean, wantMean)
	}
	// Variance of {2, 2, 4} around 8/3.
	wantVar := (2*math.Pow(2-wantMean, 2) + math.Pow(4-wantMean, 2)) / 3
	if math.Abs(gaps.Variance-wantVar) > 1e-9 {
		t.Errorf("Gaps().Variance = %g, want %g", gaps.Variance, wantVar)
	}
	if math.Abs(gaps.StdDev-math.Sqrt(wantVar)) > 1e-9 {
		t.Errorf("Gaps().StdDev = %g, want %g", gaps.StdDev, math.Sqrt(wantVar))
	}
}

func TestTallyGapsEmpty(t *testing.T) {
	tally := NewTally()
	tally.Record("a")
	tally.Record("b")

	// No track has repeated yet.
	if gaps := tally.Gaps(); gaps.Count != 0 {
		t.Errorf("Gaps().Count = %d, want 0", gaps.Count)
	}
}

func TestTallySpread(t *testing.T) {
	tally := NewTally()
	for _, id := range []string{"a", "b", "a", "c", "a", "b"} {
		tally.Record(id)
	}

	spread := tally.Spread()
	if spread.Tracks != 3 {
		t.Errorf("Spread().Tracks = %d, want 3", spread.Tracks)
	}
	if spread.Min != 1 || spread.Max != 3 {
		t.Errorf("Spread() min/max = %d/%d, want 1/3", spread.Min, spread.Max)
	}
	if math.Abs(spread.Mean-2.0) > 1e-9 {
		t.Errorf("Spread().Mean = %g, want 2", spread.Mean)
	}
}

func TestTallyCountsCopy(t *testing.T) {
	tally := NewTally()
	tally.Record("a")

	counts := tally.Counts()
	counts["a"] = 100

	if got := tally.Count("a"); got != 1 {
		t.Errorf("Counts() returned live map; Count(a) = %d, want 1", got)
	}
}
