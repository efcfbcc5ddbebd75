package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"mixtape/internal/core"
	"mixtape/internal/tui/styles"
)

// NowPlaying displays the track at the head of the queue.
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// Render renders the now playing panel.
func (n *NowPlaying) Render(track core.Track, playing bool, plays, binStart, recycle int, width, height int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)

	icon := styles.StatusIcon(playing)
	trackLine := icon + " " + styles.Title.Render(truncate(track.Title, width-8))
	detail := track.Artist
	if l := track.Length(); l != "" {
		if detail != "" {
			detail += " · "
		}
		detail += l
	}
	artist := "  " + styles.Subtitle.Render(detail)

	window := styles.Muted.Render(fmt.Sprintf("recycle bin: %d slots from rank %d", recycle, binStart))
	total := styles.Dim.Render(fmt.Sprintf("%d plays", plays))

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		trackLine,
		artist,
		"",
		window,
		total,
	))
}
