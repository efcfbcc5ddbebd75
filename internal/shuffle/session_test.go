package shuffle

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"mixtape/internal/core"
	apperrors "mixtape/internal/errors"
)

func testTracks(n int) []core.Track {
	tracks := make([]core.Track, n)
	for i := range tracks {
		tracks[i] = core.Track{
			ID:    fmt.Sprintf("t%02d", i+1),
			Title: fmt.Sprintf("Track %02d", i+1),
		}
	}
	return tracks
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		tracks  []core.Track
		params  Params
		wantErr error
	}{
		{
			name:    "empty playlist",
			tracks:  nil,
			params:  DefaultParams(),
			wantErr: apperrors.ErrEmptyPlaylist,
		},
		{
			name:    "zero randomness",
			tracks:  testTracks(5),
			params:  Params{Randomness: 0, Buffer: 4, MinRecycle: 0.2},
			wantErr: apperrors.ErrInvalidParameter,
		},
		{
			name:    "negative randomness",
			tracks:  testTracks(5),
			params:  Params{Randomness: -0.1, Buffer: 4, MinRecycle: 0.2},
			wantErr: apperrors.ErrInvalidParameter,
		},
		{
			name:    "negative buffer",
			tracks:  testTracks(5),
			params:  Params{Randomness: 0.05, Buffer: -1, MinRecycle: 0.2},
			wantErr: apperrors.ErrInvalidParameter,
		},
		{
			name:    "min_recycle above one",
			tracks:  testTracks(5),
			params:  Params{Randomness: 0.05, Buffer: 4, MinRecycle: 1.5},
			wantErr: apperrors.ErrInvalidParameter,
		},
		{
			name:    "min_recycle below zero",
			tracks:  testTracks(5),
			params:  Params{Randomness: 0.05, Buffer: 4, MinRecycle: -0.5},
			wantErr: apperrors.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.tracks, tt.params, testRNG(1))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDoesNotMutateInput(t *testing.T) {
	tracks := testTracks(20)
	want := make([]string, len(tracks))
	for i, tr := range tracks {
		want[i] = tr.ID
	}

	if _, err := New(tracks, DefaultParams(), testRNG(7)); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i, tr := range tracks {
		if tr.ID != want[i] {
			t.Fatalf("input slice mutated at %d: got %s, want %s", i, tr.ID, want[i])
		}
	}
}

func TestNewShufflesInitialOrder(t *testing.T) {
	tracks := testTracks(50)
	s, err := New(tracks, DefaultParams(), testRNG(42))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	same := true
	for i, tr := range s.Tracks() {
		if tr.ID != tracks[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("initial order identical to input order, expected a shuffle")
	}
}

func TestWindowGeometry(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		params      Params
		wantStart   int
		wantRecycle int
	}{
		{"ten tracks default params", 10, DefaultParams(), 8, 2},
		{"true random mode", 10, TrueRandomParams(), 1, 10},
		{"single track", 1, DefaultParams(), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(testTracks(tt.n), tt.params, testRNG(3))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			start, recycle := s.Window()
			if start != tt.wantStart || recycle != tt.wantRecycle {
				t.Errorf("Window() = (%d, %d), want (%d, %d)", start, recycle, tt.wantStart, tt.wantRecycle)
			}
		})
	}
}

func TestAdvancePreservesMultiset(t *testing.T) {
	s, err := New(testTracks(10), DefaultParams(), testRNG(11))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := s.Tracks().IDs()
	sort.Strings(want)

	for i := 0; i < 200; i++ {
		s.Advance()

		got := s.Tracks().IDs()
		sort.Strings(got)
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("after %d advances playlist multiset changed: got %v, want %v", i+1, got, want)
			}
		}
	}
}

func TestAdvanceRankWithinWindow(t *testing.T) {
	s, err := New(testTracks(10), DefaultParams(), testRNG(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	start, _ := s.Window()
	if start != 8 {
		t.Fatalf("Window() start = %d, want 8", start)
	}

	for i := 0; i < 500; i++ {
		played, rank := s.Advance()
		if rank < start || rank > s.Len() {
			t.Fatalf("advance %d: rank %d outside [%d, %d]", i+1, rank, start, s.Len())
		}
		if got := s.Tracks()[rank-1].ID; got != played.ID {
			t.Fatalf("advance %d: track at rank %d is %s, want played track %s", i+1, rank, got, played.ID)
		}
	}
}

func TestAdvancePreservesRelativeOrder(t *testing.T) {
	s, err := New(testTracks(12), DefaultParams(), testRNG(9))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 100; i++ {
		before := s.Tracks()
		played, _ := s.Advance()
		after := s.Tracks()

		// Dropping the played track from both sides must leave identical
		// sequences.
		rest := before[1:]
		var afterRest []string
		for _, tr := range after {
			if tr.ID != played.ID {
				afterRest = append(afterRest, tr.ID)
			}
		}
		if len(afterRest) != len(rest) {
			t.Fatalf("advance %d: expected %d non-played tracks, got %d", i+1, len(rest), len(afterRest))
		}
		for j := range rest {
			if rest[j].ID != afterRest[j] {
				t.Fatalf("advance %d: relative order changed at %d: got %s, want %s", i+1, j, afterRest[j], rest[j].ID)
			}
		}
	}
}

func TestNoRepeatBeforeBinStart(t *testing.T) {
	s, err := New(testTracks(10), DefaultParams(), testRNG(21))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	start, _ := s.Window()

	lastPlay := make(map[string]int)
	for i := 1; i <= 2000; i++ {
		played, _ := s.Advance()
		if prev, ok := lastPlay[played.ID]; ok {
			if gap := i - prev; gap < start {
				t.Fatalf("track %s replayed after %d plays, minimum is %d", played.ID, gap, start)
			}
		}
		lastPlay[played.ID] = i
	}
}

func TestTrueRandomModeReachesFullRange(t *testing.T) {
	s, err := New(testTracks(10), TrueRandomParams(), testRNG(13))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	start, _ := s.Window()
	if start != 1 {
		t.Fatalf("Window() start = %d, want 1", start)
	}

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		_, rank := s.Advance()
		if rank < 1 || rank > 10 {
			t.Fatalf("rank %d outside [1, 10]", rank)
		}
		seen[rank] = true
	}
	for rank := 1; rank <= 10; rank++ {
		if !seen[rank] {
			t.Errorf("rank %d never drawn in true random mode", rank)
		}
	}
}

func TestSingleTrackReplays(t *testing.T) {
	s, err := New(testTracks(1), DefaultParams(), testRNG(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		played, rank := s.Advance()
		if played.ID != "t01" {
			t.Fatalf("Advance() played %s, want t01", played.ID)
		}
		if rank != 1 {
			t.Fatalf("Advance() rank = %d, want 1", rank)
		}
	}
	if got := s.Tracks(); len(got) != 1 || got[0].ID != "t01" {
		t.Errorf("playlist changed for single-track session: %v", got.IDs())
	}
}

func TestSnapshotResume(t *testing.T) {
	s, err := New(testTracks(10), DefaultParams(), testRNG(31))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 25; i++ {
		s.Advance()
	}

	snap := s.Snapshot()

	a, err := Resume(snap, testRNG(99))
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	b, err := Resume(snap, testRNG(99))
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}

	// Same snapshot, same seed: identical play sequences.
	for i := 0; i < 100; i++ {
		ta, ra := a.Advance()
		tb, rb := b.Advance()
		if ta.ID != tb.ID || ra != rb {
			t.Fatalf("resumed sessions diverged at play %d: (%s, %d) vs (%s, %d)", i+1, ta.ID, ra, tb.ID, rb)
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s, err := New(testTracks(10), DefaultParams(), testRNG(8))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap := s.Snapshot()
	want := snap.Playlist.IDs()

	for i := 0; i < 50; i++ {
		s.Advance()
	}

	got := snap.Playlist.IDs()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot mutated by later advances at %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResumeValidation(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		wantErr error
	}{
		{
			name:    "empty playlist",
			state:   State{},
			wantErr: apperrors.ErrEmptyPlaylist,
		},
		{
			name:    "recycle below range",
			state:   State{Playlist: core.Playlist(testTracks(5)), Recycle: 0},
			wantErr: apperrors.ErrInvalidState,
		},
		{
			name:    "recycle above range",
			state:   State{Playlist: core.Playlist(testTracks(5)), Recycle: 6},
			wantErr: apperrors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resume(tt.state, testRNG(1))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resume() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLongRunPlayCountsApproachUniform(t *testing.T) {
	const plays = 10000
	s, err := New(testTracks(10), DefaultParams(), testRNG(55))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	counts := make(map[string]int)
	for i := 0; i < plays; i++ {
		played, _ := s.Advance()
		counts[played.ID]++
	}

	// With a bin of 2 on 10 tracks no gap is shorter than 8, so counts
	// stay close to plays/n.
	for id, c := range counts {
		if c < 800 || c > 1300 {
			t.Errorf("track %s played %d times, expected near %d", id, c, plays/10)
		}
	}
}

func TestGapVarianceBelowTrueRandomBaseline(t *testing.T) {
	const plays = 5000

	variance := func(p Params, seed int64) float64 {
		t.Helper()
		s, err := New(testTracks(10), p, testRNG(seed))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		lastPlay := make(map[string]int)
		var gaps []float64
		for i := 1; i <= plays; i++ {
			played, _ := s.Advance()
			if prev, ok := lastPlay[played.ID]; ok {
				gaps = append(gaps, float64(i-prev))
			}
			lastPlay[played.ID] = i
		}
		var mean float64
		for _, g := range gaps {
			mean += g
		}
		mean /= float64(len(gaps))
		var v float64
		for _, g := range gaps {
			v += (g - mean) * (g - mean)
		}
		return v / float64(len(gaps))
	}

	constrained := variance(DefaultParams(), 77)
	baseline := variance(TrueRandomParams(), 77)
	if constrained >= baseline {
		t.Errorf("constrained gap variance %.2f not below true-random baseline %.2f", constrained, baseline)
	}
}
