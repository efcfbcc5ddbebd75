package sim

import (
	"context"
	"time"

	"mixtape/internal/core"
	"mixtape/internal/shuffle"
	"mixtape/internal/stats"
)

// Event represents one completed play in a simulated session.
type Event struct {
	Tick      int       // 1-based play number
	Timestamp time.Time // when the play was emitted
	Track     core.Track
	Rank      int // 1-indexed rank the track was reinserted at
}

// Runner drives a shuffle session and emits one event per play.
type Runner struct {
	session  *shuffle.Session
	interval time.Duration
	events   chan Event
	done     chan struct{}
}

// NewRunner creates a runner over the given session. With a zero
// interval plays are emitted as fast as the consumer drains them;
// otherwise one play fires per tick.
func NewRunner(session *shuffle.Session, interval time.Duration) *Runner {
	return &Runner{
		session:  session,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns the channel of play events. It is closed when the
// runner finishes.
func (r *Runner) Events() <-chan Event {
	return r.events
}

// Start emits plays until the given count is reached, the context is
// cancelled, or Stop is called. A non-positive count runs unbounded.
func (r *Runner) Start(ctx context.Context, plays int) error {
	defer close(r.events)

	var ticker *time.Ticker
	if r.interval > 0 {
		ticker = time.NewTicker(r.interval)
		defer ticker.Stop()
	}

	for tick := 1; plays <= 0 || tick <= plays; tick++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.done:
				return nil
			case <-ticker.C:
			}
		}

		track, rank := r.session.Advance()
		e := Event{
			Tick:      tick,
			Timestamp: time.Now(),
			Track:     track,
			Rank:      rank,
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.done:
			return nil
		case r.events <- e:
		}
	}

	return nil
}

// Stop stops the runner.
func (r *Runner) Stop() {
	close(r.done)
}

// Collect advances the session the given number of times synchronously,
// recording every play into the tally. It is the fast path for batch
// simulation where no event stream is needed.
func Collect(session *shuffle.Session, plays int, tally *stats.Tally) {
	for i := 0; i < plays; i++ {
		track, _ := session.Advance()
		tally.Record(track.ID)
	}
}
