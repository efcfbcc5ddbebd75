// Package stats accumulates play tallies for a shuffle session. The
// session itself never tracks play history; counting is the harness's
// job.
package stats

import "math"

// Tally records which tracks have played and how far apart repeats land.
type Tally struct {
	plays    int
	counts   map[string]int
	lastPlay map[string]int
	gaps     []int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		counts:   make(map[string]int),
		lastPlay: make(map[string]int),
	}
}

// Record registers one completed play of the given track.
func (t *Tally) Record(id string) {
	t.plays++
	t.counts[id]++
	if prev, ok := t.lastPlay[id]; ok {
		t.gaps = append(t.gaps, t.plays-prev)
	}
	t.lastPlay[id] = t.plays
}

// Plays returns the total number of recorded plays.
func (t *Tally) Plays() int {
	return t.plays
}

// Count returns how many times the given track has played.
func (t *Tally) Count(id string) int {
	return t.counts[id]
}

// Counts returns a copy of the per-track play counts.
func (t *Tally) Counts() map[string]int {
	out := make(map[string]int, len(t.counts))
	for id, c := range t.counts {
		out[id] = c
	}
	return out
}

// GapSummary describes the distribution of gaps between successive plays
// of the same track.
type GapSummary struct {
	Count    int     `json:"count"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// Gaps summarizes the repeat-gap distribution seen so far.
func (t *Tally) Gaps() GapSummary {
	if len(t.gaps) == 0 {
		return GapSummary{}
	}

	s := GapSummary{
		Count: len(t.gaps),
		Min:   t.gaps[0],
		Max:   t.gaps[0],
	}
	var sum float64
	for _, g := range t.gaps {
		if g < s.Min {
			s.Min = g
		}
		if g > s.Max {
			s.Max = g
		}
		sum += float64(g)
	}
	s.Mean = sum / float64(len(t.gaps))

	var sq float64
	for _, g := range t.gaps {
		d := float64(g) - s.Mean
		sq += d * d
	}
	s.Variance = sq / float64(len(t.gaps))
	s.StdDev = math.Sqrt(s.Variance)
	return s
}

// CountSummary describes how evenly plays are spread across tracks.
type CountSummary struct {
	Tracks int     `json:"tracks"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
}

// Spread summarizes the per-track play counts.
func (t *Tally) Spread() CountSummary {
	if len(t.counts) == 0 {
		return CountSummary{}
	}

	s := CountSummary{Tracks: len(t.counts)}
	first := true
	for _, c := range t.counts {
		if first {
			s.Min, s.Max = c, c
			first = false
			continue
		}
		if c < s.Min {
			s.Min = c
		}
		if c > s.Max {
			s.Max = c
		}
	}
	s.Mean = float64(t.plays) / float64(len(t.counts))
	return s
}
