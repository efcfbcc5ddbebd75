package cli

import (
	"time"

	"github.com/spf13/cobra"

	"mixtape/internal/tui"
)

var tuiRefresh int

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "watch"},
	Short:   "Watch the playlist reorder itself live",
	Long: `Launch the interactive terminal dashboard.

The dashboard provides a live view with:
  • Now Playing - the track at the head of the queue
  • Queue - the full playlist order, recycle bin highlighted
  • History - recent plays and where they were recycled to
  • Counts - per-track play totals

Keyboard shortcuts:
  q, Ctrl+C    Quit
  Space        Pause/resume auto-play
  n            Advance one play
  Tab          Switch panel`,
	RunE: runTUI,
}

func init() {
	addSessionFlags(tuiCmd)
	tuiCmd.Flags().IntVar(&tuiRefresh, "refresh", 0, "Milliseconds between auto-plays (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	tracks, err := pickTracks()
	if err != nil {
		return err
	}

	session, err := newSession(tracks)
	if err != nil {
		return err
	}

	refresh := tuiRefresh
	if refresh <= 0 {
		refresh = cfg.TUI.RefreshInterval
	}

	return tui.Run(session, time.Duration(refresh)*time.Millisecond)
}
