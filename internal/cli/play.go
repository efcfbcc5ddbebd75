package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mixtape/internal/core"
	"mixtape/internal/sim"
	"mixtape/internal/wizard"
)

var (
	playPlays    int
	playInterval int
	playNoEmoji  bool
	playStamps   bool
	playRank     bool
	playTemplate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Stream simulated plays to the terminal",
	Long: `Play the shuffled playlist as a stream of now-playing lines, one per
interval, until the requested number of plays or Ctrl+C.

Without a track source (--count or --tracks) and with a terminal
attached, a playlist picker is shown.

Examples:
  mixtape play --count 10 --interval 500
  mixtape play --tracks mix.toml --plays 50 --timestamps
  mixtape play --template '{{.Tick}} {{.Artist}} - {{.Title}}'`,
	RunE: runPlayStream,
}

func init() {
	addSessionFlags(playCmd)
	playCmd.Flags().IntVar(&playPlays, "plays", 0, "Stop after this many plays (0 = until interrupted)")
	playCmd.Flags().IntVar(&playInterval, "interval", 0, "Milliseconds between plays (default from config)")
	playCmd.Flags().BoolVar(&playNoEmoji, "no-emoji", false, "Disable emoji in output")
	playCmd.Flags().BoolVar(&playStamps, "timestamps", false, "Prefix each play with a timestamp")
	playCmd.Flags().BoolVar(&playRank, "rank", false, "Show where each track was recycled to")
	playCmd.Flags().StringVar(&playTemplate, "template", "", "Custom line template")
	rootCmd.AddCommand(playCmd)
}

func runPlayStream(cmd *cobra.Command, args []string) error {
	tracks, err := pickTracks()
	if err != nil {
		return err
	}

	session, err := newSession(tracks)
	if err != nil {
		return err
	}

	interval := playInterval
	if interval <= 0 {
		interval = cfg.Play.Interval
	}

	formatter := sim.NewFormatter(
		sim.WithEmoji(!playNoEmoji),
		sim.WithTimestamp(playStamps || cfg.Play.Timestamps),
		sim.WithRank(playRank || cfg.Play.ShowRank),
		sim.WithTemplate(pickTemplate()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(session, time.Duration(interval)*time.Millisecond)
	errc := make(chan error, 1)
	go func() {
		errc <- runner.Start(ctx, playPlays)
	}()

	for e := range runner.Events() {
		fmt.Println(formatter.Format(e))
	}

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func pickTemplate() string {
	if playTemplate != "" {
		return playTemplate
	}
	return cfg.Play.Template
}

// pickTracks resolves the track source like loadTracks, but offers an
// interactive playlist picker when nothing was specified explicitly.
func pickTracks() ([]core.Track, error) {
	if optTracksFile == "" && optCount == 0 && cfg.Playlist.File == "" && wizard.IsTerminal() {
		tracks, picked, err := wizard.PromptPlaylist()
		if err != nil {
			return nil, err
		}
		if picked {
			return tracks, nil
		}
	}
	return loadTracks()
}
