package shuffle

import "math"

// RecycleSize computes how many trailing positions of an n-track playlist
// form the recycle bin: the zone a just-played track may be dropped back
// into.
//
// The growth term 1 - e^(-randomness * ln n) saturates toward 1 quickly,
// so on its own the bin would cover all but one track for any realistic
// playlist; Randomness rescales the decay so the bin grows sub-linearly
// with playlist size. MinRecycle is a proportional floor on the bin,
// Buffer an absolute cap on it: combining them as
// min(n-Buffer, round(n*max(MinRecycle, growth))) guarantees the most
// recent Buffer plays stay out of the bin entirely while the bin never
// shrinks below the proportional floor.
func RecycleSize(n int, p Params) int {
	if n <= 1 {
		return 1
	}

	growth := 1 - math.Exp(-p.Randomness*math.Log(float64(n)))
	proportional := int(math.Round(float64(n) * math.Max(p.MinRecycle, growth)))

	recycle := min(max(1, n-p.Buffer), proportional)
	if recycle < 1 {
		// proportional rounds to 0 for tiny playlists with a tiny
		// MinRecycle; a zero-width bin would make reinsertion impossible.
		recycle = 1
	}
	return recycle
}

// binStart returns the 1-indexed rank at which the recycle bin begins.
// Reinsertion targets lie in the closed range [binStart, n].
func binStart(n, recycle int) int {
	return max(1, n-recycle)
}
