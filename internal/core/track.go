package core

import (
	"fmt"
	"time"
)

// Track represents a playable audio track.
type Track struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Duration time.Duration `json:"duration"`
}

// Label returns a display string for the track.
func (t Track) Label() string {
	if t.Artist == "" {
		return t.Title
	}
	return fmt.Sprintf("%s — %s", t.Artist, t.Title)
}

// Length formats the track duration as m:ss. Returns "" when the
// duration is unknown.
func (t Track) Length() string {
	if t.Duration <= 0 {
		return ""
	}
	total := int(t.Duration.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
