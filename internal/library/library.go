// Package library provides track sources for shuffle sessions: synthetic
// playlists for simulation and TOML tracklist files for real ones.
package library

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"mixtape/internal/core"
	apperrors "mixtape/internal/errors"
)

// Generate returns n synthetic tracks. Only track identity matters to the
// shuffler, so titles are just numbered placeholders. Durations cycle
// through a plausible 2:30-5:15 range so display code has something to
// show.
func Generate(n int) []core.Track {
	tracks := make([]core.Track, n)
	for i := range tracks {
		tracks[i] = core.Track{
			ID:       fmt.Sprintf("%03d", i+1),
			Title:    fmt.Sprintf("Track %03d", i+1),
			Duration: time.Duration(150+15*(i%12)) * time.Second,
		}
	}
	return tracks
}

type trackEntry struct {
	ID      string `toml:"id"`
	Title   string `toml:"title"`
	Artist  string `toml:"artist"`
	Seconds int    `toml:"seconds"`
}

type tracklist struct {
	Tracks []trackEntry `toml:"track"`
}

// Load reads a tracklist from a TOML file containing one or more
// [[track]] tables with id, title, artist, and seconds keys. Tracks
// without an id get one assigned from their position; duplicate ids are
// rejected.
func Load(path string) ([]core.Track, error) {
	var list tracklist
	if _, err := toml.DecodeFile(path, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTracklistInvalid, err)
	}
	if len(list.Tracks) == 0 {
		return nil, fmt.Errorf("%w: no [[track]] tables in %s", apperrors.ErrTracklistInvalid, path)
	}

	tracks := make([]core.Track, len(list.Tracks))
	seen := make(map[string]bool, len(list.Tracks))
	for i, e := range list.Tracks {
		if e.ID == "" {
			e.ID = fmt.Sprintf("%03d", i+1)
		}
		if e.Title == "" {
			e.Title = e.ID
		}
		if e.Seconds < 0 {
			return nil, fmt.Errorf("%w: track %q has negative seconds", apperrors.ErrTracklistInvalid, e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate track id %q", apperrors.ErrTracklistInvalid, e.ID)
		}
		seen[e.ID] = true
		tracks[i] = core.Track{
			ID:       e.ID,
			Title:    e.Title,
			Artist:   e.Artist,
			Duration: time.Duration(e.Seconds) * time.Second,
		}
	}
	return tracks, nil
}
