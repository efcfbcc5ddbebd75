package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"mixtape/internal/core"
	"mixtape/internal/tui/styles"
)

// Queue displays the playlist order with the recycle bin marked.
type Queue struct {
	offset int
}

// NewQueue creates a new Queue component
func NewQueue() *Queue {
	return &Queue{}
}

// ScrollDown scrolls the queue down
func (q *Queue) ScrollDown() {
	q.offset++
}

// ScrollUp scrolls the queue up
func (q *Queue) ScrollUp() {
	if q.offset > 0 {
		q.offset--
	}
}

// Render renders the queue panel. binStart is the 1-indexed rank where
// the recycle bin begins.
func (q *Queue) Render(playlist core.Playlist, binStart, width, height int, focused bool) string {
	title := styles.PanelTitle("Queue", focused)

	var content string
	if len(playlist) == 0 {
		content = styles.Muted.Render("Queue is empty")
	} else {
		content = q.renderQueue(playlist, binStart, width-4, height-4)
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

func (q *Queue) renderQueue(playlist core.Playlist, binStart, width, maxLines int) string {
	// Adjust offset if needed
	if q.offset >= len(playlist) {
		q.offset = 0
	}

	visibleCount := maxLines - 1 // Leave room for "more" indicator
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := q.offset
	end := start + visibleCount
	if end > len(playlist) {
		end = len(playlist)
	}

	lines := make([]string, 0, end-start+1)

	for i := start; i < end; i++ {
		rank := i + 1
		num := fmt.Sprintf("%4d.", rank)
		label := truncate(playlist[i].Label(), width-10)

		var line string
		switch {
		case i == 0:
			line = styles.Playing.Render(fmt.Sprintf("%s ▶ %s", num, label))
		case rank >= binStart:
			// Inside the recycle bin: reinsertion can land here.
			line = fmt.Sprintf("%s %s %s",
				styles.Dim.Render(num),
				styles.Recycle.Render("♻"),
				styles.Recycle.Render(label))
		default:
			line = fmt.Sprintf("%s   %s", styles.Dim.Render(num), label)
		}

		lines = append(lines, line)
	}

	if end < len(playlist) {
		more := styles.Dim.Render(fmt.Sprintf("      ... and %d more", len(playlist)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
