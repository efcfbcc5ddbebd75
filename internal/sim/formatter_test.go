package sim

import (
	"testing"
	"time"

	"mixtape/internal/core"
)

func testEvent() Event {
	return Event{
		Tick:      7,
		Timestamp: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Track:     core.Track{ID: "t03", Title: "Blue in Green", Artist: "Miles Davis"},
		Rank:      9,
	}
}

func TestFormatterLine(t *testing.T) {
	tests := []struct {
		name string
		opts []FormatterOption
		want string
	}{
		{
			name: "defaults",
			opts: nil,
			want: "🎵 #7 Now playing: Miles Davis — Blue in Green",
		},
		{
			name: "no emoji",
			opts: []FormatterOption{WithEmoji(false)},
			want: "#7 Now playing: Miles Davis — Blue in Green",
		},
		{
			name: "timestamp and rank",
			opts: []FormatterOption{WithEmoji(false), WithTimestamp(true), WithRank(true)},
			want: "15:09:26 #7 Now playing: Miles Davis — Blue in Green (recycled to slot 9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.opts...)
			if got := f.Format(testEvent()); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterTemplate(t *testing.T) {
	f := NewFormatter(WithTemplate("{{.Tick}}|{{.Artist}}|{{.Title}}|{{.Rank}}"))
	want := "7|Miles Davis|Blue in Green|9"
	if got := f.Format(testEvent()); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatterBadTemplateFallsBack(t *testing.T) {
	f := NewFormatter(WithTemplate("{{.Broken"), WithEmoji(false))
	want := "#7 Now playing: Miles Davis — Blue in Green"
	if got := f.Format(testEvent()); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
