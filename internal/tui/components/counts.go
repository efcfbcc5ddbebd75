package components

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"mixtape/internal/stats"
	"mixtape/internal/tui/styles"
)

// Counts displays per-track play totals.
type Counts struct{}

// NewCounts creates a new Counts component
func NewCounts() *Counts {
	return &Counts{}
}

// Render renders the play-count panel
func (c *Counts) Render(tally *stats.Tally, width, height int, focused bool) string {
	title := styles.PanelTitle("Play Counts", focused)

	var content string
	if tally == nil || tally.Plays() == 0 {
		content = styles.Muted.Render("No plays yet")
	} else {
		content = c.renderCounts(tally, width-4, height-4)
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

func (c *Counts) renderCounts(tally *stats.Tally, width, maxLines int) string {
	counts := tally.Counts()
	spread := tally.Spread()

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	barWidth := width - 16
	if barWidth < 5 {
		barWidth = 5
	}

	lines := make([]string, 0, maxLines)
	for i, id := range ids {
		if i >= maxLines-1 {
			lines = append(lines, styles.Dim.Render(fmt.Sprintf("... and %d more", len(ids)-i)))
			break
		}
		count := counts[id]
		lines = append(lines, fmt.Sprintf("%s %4d %s",
			styles.Dim.Render(fmt.Sprintf("%-6s", truncate(id, 6))),
			count,
			styles.Bar(count, spread.Max, barWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
