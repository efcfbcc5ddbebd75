package cli

import (
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"mixtape/internal/core"
	apperrors "mixtape/internal/errors"
	"mixtape/internal/library"
	"mixtape/internal/shuffle"
)

// Flags shared by every command that builds a shuffle session. Negative
// sentinels keep "explicitly zero" distinguishable from "not set".
var (
	optCount      int
	optTracksFile string
	optRandomness float64
	optBuffer     int
	optMinRecycle float64
	optTrueRandom bool
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&optCount, "count", "n", 0, "Number of synthetic tracks (default from config)")
	cmd.Flags().StringVar(&optTracksFile, "tracks", "", "TOML tracklist file")
	cmd.Flags().Float64Var(&optRandomness, "randomness", 0, "Recycle-window decay rate (default from config)")
	cmd.Flags().IntVar(&optBuffer, "buffer", -1, "Recent plays held out of the recycle bin (default from config)")
	cmd.Flags().Float64Var(&optMinRecycle, "min-recycle", -1, "Proportional floor on the recycle bin (default from config)")
	cmd.Flags().BoolVar(&optTrueRandom, "true-random", false, "Disable repeat suppression (uniform baseline)")
}

// sessionParams resolves the shuffle parameters from config and flags.
func sessionParams() shuffle.Params {
	if optTrueRandom {
		return shuffle.TrueRandomParams()
	}
	p := cfg.Shuffle.Params()
	if optRandomness > 0 {
		p.Randomness = optRandomness
	}
	if optBuffer >= 0 {
		p.Buffer = optBuffer
	}
	if optMinRecycle >= 0 {
		p.MinRecycle = optMinRecycle
	}
	return p
}

// loadTracks resolves the track source: explicit flags first, then the
// [playlist] config section.
func loadTracks() ([]core.Track, error) {
	switch {
	case optTracksFile != "":
		return library.Load(optTracksFile)
	case optCount > 0:
		return library.Generate(optCount), nil
	case cfg.Playlist.File != "":
		return library.Load(cfg.Playlist.File)
	case cfg.Playlist.Size > 0:
		return library.Generate(cfg.Playlist.Size), nil
	}
	return nil, apperrors.ErrEmptyPlaylist
}

// sessionRNG builds the session's random source from --seed, the config,
// or system entropy, in that order.
func sessionRNG() *rand.Rand {
	s := seed
	if s == 0 {
		s = cfg.Simulate.Seed
	}
	if s == 0 {
		s = shuffle.Seed()
	}
	slog.Debug("session random source", "seed", s)
	return rand.New(rand.NewSource(s))
}

// newSession assembles a session from the resolved tracks, parameters,
// and random source.
func newSession(tracks []core.Track) (*shuffle.Session, error) {
	params := sessionParams()
	session, err := shuffle.New(tracks, params, sessionRNG())
	if err != nil {
		return nil, err
	}
	start, recycle := session.Window()
	slog.Debug("session created",
		"tracks", session.Len(),
		"recycle", recycle,
		"bin_start", start,
		"randomness", params.Randomness,
		"buffer", params.Buffer,
		"min_recycle", params.MinRecycle)
	return session, nil
}
