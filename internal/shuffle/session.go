package shuffle

import (
	"fmt"
	"math"
	"math/rand"

	"mixtape/internal/core"
	apperrors "mixtape/internal/errors"
)

// Session owns one playlist and reorders it after every play. The head of
// the playlist is always the next track to play; Advance pops it and drops
// it back into the recycle bin at a random rank.
//
// A Session is not safe for concurrent use. Independent sessions are fully
// independent: give each its own *rand.Rand and they can run in parallel.
type Session struct {
	playlist core.Playlist
	recycle  int
	start    int // 1-indexed rank where the recycle bin begins
	rng      *rand.Rand
}

// State is a snapshot of a session: the track order plus the derived
// recycle-bin size. It is trivially serializable and can be handed back
// to Resume to continue a session.
type State struct {
	Playlist core.Playlist `json:"playlist"`
	Recycle  int           `json:"recycle"`
}

// New creates a session over the given tracks. It validates the
// parameters, applies one unbiased shuffle so the initial order carries
// no artifact of the input order, and computes the recycle bin once: the
// bin depends only on playlist length and the parameters, both fixed for
// the life of the session.
//
// If rng is nil a fresh entropy-seeded source is used. Pass an explicit
// source for reproducible sessions.
func New(tracks []core.Track, p Params, rng *rand.Rand) (*Session, error) {
	if len(tracks) == 0 {
		return nil, apperrors.ErrEmptyPlaylist
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(Seed()))
	}

	playlist := core.Playlist(tracks).Clone()
	rng.Shuffle(len(playlist), func(i, j int) {
		playlist[i], playlist[j] = playlist[j], playlist[i]
	})

	n := len(playlist)
	recycle := RecycleSize(n, p)
	return &Session{
		playlist: playlist,
		recycle:  recycle,
		start:    binStart(n, recycle),
		rng:      rng,
	}, nil
}

// Resume reconstructs a session from a snapshot, with a fresh random
// source. The snapshot's recycle size is trusted as-is so a resumed
// session behaves identically to the one that produced it.
func Resume(st State, rng *rand.Rand) (*Session, error) {
	n := len(st.Playlist)
	if n == 0 {
		return nil, apperrors.ErrEmptyPlaylist
	}
	if st.Recycle < 1 || st.Recycle > n {
		return nil, fmt.Errorf("%w: recycle size %d out of range [1, %d]", apperrors.ErrInvalidState, st.Recycle, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(Seed()))
	}
	return &Session{
		playlist: st.Playlist.Clone(),
		recycle:  st.Recycle,
		start:    binStart(n, st.Recycle),
		rng:      rng,
	}, nil
}

// Advance plays the head track and reinserts it into the recycle bin.
// It returns the played track and the 1-indexed rank it was reinserted
// at. Call it exactly once per completed play.
//
// A single-track playlist degenerates to replaying that track; the
// window starts and ends at the only slot, so there is nothing to move.
func (s *Session) Advance() (core.Track, int) {
	played := s.playlist[0]
	n := len(s.playlist)
	if n == 1 {
		return played, 1
	}

	rank := s.drawRank()
	// Remove the head and reinsert it so exactly rank-1 tracks precede
	// it; everything else keeps its relative order.
	copy(s.playlist[:rank-1], s.playlist[1:rank])
	s.playlist[rank-1] = played
	return played, rank
}

// drawRank samples the reinsertion rank: one continuous-uniform draw over
// [start, n], rounded half-up. Rounding down instead would bias targets
// toward the near edge of the bin and shift the gap statistics.
func (s *Session) drawRank() int {
	n := len(s.playlist)
	u := float64(s.start) + s.rng.Float64()*float64(n-s.start)
	return int(math.Floor(u + 0.5))
}

// Peek returns the track that the next Advance will play.
func (s *Session) Peek() core.Track {
	return s.playlist[0]
}

// Tracks returns a copy of the current playlist order.
func (s *Session) Tracks() core.Playlist {
	return s.playlist.Clone()
}

// Len returns the number of tracks in the session.
func (s *Session) Len() int {
	return len(s.playlist)
}

// Window returns the recycle-bin geometry: the 1-indexed rank where the
// bin begins and the bin size.
func (s *Session) Window() (start, recycle int) {
	return s.start, s.recycle
}

// Snapshot captures the session state for later Resume.
func (s *Session) Snapshot() State {
	return State{
		Playlist: s.playlist.Clone(),
		Recycle:  s.recycle,
	}
}
