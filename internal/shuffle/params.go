package shuffle

import (
	"fmt"

	apperrors "mixtape/internal/errors"
)

// Default parameter values. The exact coefficients are a tuning choice,
// not a correctness one; these are the values the window formula was
// calibrated against.
const (
	DefaultRandomness = 0.05
	DefaultBuffer     = 4
	DefaultMinRecycle = 0.2
)

// Params controls how aggressively a session suppresses repeats.
type Params struct {
	// Randomness is the decay rate controlling how quickly the recycle
	// window approaches full-list size as the playlist grows.
	Randomness float64 `json:"randomness"`

	// Buffer is a hard floor on the number of trailing positions excluded
	// from immediate reinsertion: the last Buffer plays can never come up
	// again before at least Buffer other tracks have played.
	Buffer int `json:"buffer"`

	// MinRecycle is a hard floor on recycle-window size as a fraction of
	// the playlist length. It keeps the window usable for very large
	// playlists where the absolute Buffer floor is too small.
	MinRecycle float64 `json:"min_recycle"`
}

// DefaultParams returns the standard repeat-suppressing parameters.
func DefaultParams() Params {
	return Params{
		Randomness: DefaultRandomness,
		Buffer:     DefaultBuffer,
		MinRecycle: DefaultMinRecycle,
	}
}

// TrueRandomParams returns parameters that disable repeat suppression
// entirely: the recycle window covers the whole playlist, so every
// reinsertion is an unconstrained uniform draw. Useful as a baseline
// when comparing gap statistics.
func TrueRandomParams() Params {
	return Params{
		Randomness: DefaultRandomness,
		Buffer:     0,
		MinRecycle: 1,
	}
}

// Validate checks the parameters for errors.
func (p Params) Validate() error {
	if p.Randomness <= 0 {
		return fmt.Errorf("%w: randomness must be positive (got %g)", apperrors.ErrInvalidParameter, p.Randomness)
	}
	if p.Buffer < 0 {
		return fmt.Errorf("%w: buffer must be non-negative (got %d)", apperrors.ErrInvalidParameter, p.Buffer)
	}
	if p.MinRecycle < 0 || p.MinRecycle > 1 {
		return fmt.Errorf("%w: min_recycle must be in [0, 1] (got %g)", apperrors.ErrInvalidParameter, p.MinRecycle)
	}
	return nil
}
