package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"mixtape/internal/core"
	"mixtape/internal/tui/styles"
)

// PlayEntry represents one completed play.
type PlayEntry struct {
	Tick  int
	Track core.Track
	Rank  int // where the track was recycled to
}

// History displays recent plays, newest first.
type History struct{}

// NewHistory creates a new History component
func NewHistory() *History {
	return &History{}
}

// Render renders the history panel
func (h *History) Render(entries []PlayEntry, width, height int, focused bool) string {
	title := styles.PanelTitle("History", focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("No plays yet")
	} else {
		content = h.renderHistory(entries, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (h *History) renderHistory(entries []PlayEntry, width, maxLines int) string {
	lines := make([]string, 0, maxLines)

	for i, entry := range entries {
		if i >= maxLines {
			break
		}

		tick := styles.Dim.Render(fmt.Sprintf("#%-5d", entry.Tick))
		slot := styles.Recycle.Render(fmt.Sprintf("→ %d", entry.Rank))
		label := truncate(entry.Track.Label(), width-16)

		lines = append(lines, fmt.Sprintf("%s %s %s", tick, label, slot))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
