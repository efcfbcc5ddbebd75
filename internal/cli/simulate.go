package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mixtape/internal/core"
	"mixtape/internal/shuffle"
	"mixtape/internal/sim"
	"mixtape/internal/stats"
)

var (
	simPlays    int
	simBaseline bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a batch of plays and tabulate the results",
	Long: `Run a shuffle session for a number of plays and report per-track play
counts and the distribution of gaps between repeats.

With --baseline a second session runs in true-random mode over the same
tracks, for comparing gap statistics against an unconstrained shuffle.
Pass --seed to make the comparison use identical random streams.

Examples:
  mixtape simulate --count 10 --plays 5000
  mixtape simulate --tracks mix.toml --plays 1000 --baseline
  mixtape simulate --count 100 --buffer 0 --min-recycle 1`,
	RunE: runSimulate,
}

func init() {
	addSessionFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&simPlays, "plays", 0, "Number of plays to simulate (default from config)")
	simulateCmd.Flags().BoolVar(&simBaseline, "baseline", false, "Also run a true-random baseline session")
	rootCmd.AddCommand(simulateCmd)
}

type simulateReport struct {
	Tracks   int                `json:"tracks"`
	Plays    int                `json:"plays"`
	Recycle  int                `json:"recycle"`
	BinStart int                `json:"bin_start"`
	Counts   map[string]int     `json:"counts"`
	Spread   stats.CountSummary `json:"spread"`
	Gaps     stats.GapSummary   `json:"gaps"`
	Baseline *stats.GapSummary  `json:"baseline_gaps,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	tracks, err := loadTracks()
	if err != nil {
		return err
	}

	plays := simPlays
	if plays <= 0 {
		plays = cfg.Simulate.Plays
	}

	session, err := newSession(tracks)
	if err != nil {
		return err
	}

	tally := stats.NewTally()
	sim.Collect(session, plays, tally)

	start, recycle := session.Window()
	report := simulateReport{
		Tracks:   session.Len(),
		Plays:    plays,
		Recycle:  recycle,
		BinStart: start,
		Counts:   tally.Counts(),
		Spread:   tally.Spread(),
		Gaps:     tally.Gaps(),
	}

	if simBaseline {
		baseline, err := shuffle.New(tracks, shuffle.TrueRandomParams(), sessionRNG())
		if err != nil {
			return err
		}
		baseTally := stats.NewTally()
		sim.Collect(baseline, plays, baseTally)
		gaps := baseTally.Gaps()
		report.Baseline = &gaps
	}

	if JSONOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printSimulateReport(tracks, report)
	return nil
}

func printSimulateReport(tracks []core.Track, report simulateReport) {
	NormalF("Simulated %d plays over %d tracks (recycle bin %d, starts at rank %d)",
		report.Plays, report.Tracks, report.Recycle, report.BinStart)
	fmt.Println()

	table := NewTable("TRACK", "PLAYS", "")
	for _, tr := range tracks {
		count := report.Counts[tr.ID]
		table.Row(
			TruncateString(tr.Label(), 40),
			fmt.Sprintf("%d", count),
			FormatBar(count, report.Spread.Max, 30),
		)
	}
	table.Flush()

	fmt.Println()
	printGaps("Repeat gaps", report.Gaps)
	if report.Baseline != nil {
		printGaps("Baseline (true random)", *report.Baseline)
	}
}

func printGaps(label string, g stats.GapSummary) {
	if g.Count == 0 {
		Normal(label, "no repeats recorded")
		return
	}
	NormalF("%s: min %d, max %d, mean %.2f, variance %.2f (%d repeats)",
		label, g.Min, g.Max, g.Mean, g.Variance, g.Count)
}
