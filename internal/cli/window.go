package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mixtape/internal/shuffle"
)

var windowSweep bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the recycle window for a playlist size",
	Long: `Compute the recycle-bin size for a playlist length and the current
shuffle parameters, without running any plays.

With --sweep the window is tabulated across a range of playlist sizes,
which is the quickest way to see how the parameters shape the bin.`,
	RunE: runWindow,
}

func init() {
	addSessionFlags(windowCmd)
	windowCmd.Flags().BoolVar(&windowSweep, "sweep", false, "Tabulate across playlist sizes")
	rootCmd.AddCommand(windowCmd)
}

type windowInfo struct {
	Tracks   int     `json:"tracks"`
	Recycle  int     `json:"recycle"`
	BinStart int     `json:"bin_start"`
	Fraction float64 `json:"fraction"`
}

func windowFor(n int, p shuffle.Params) windowInfo {
	recycle := shuffle.RecycleSize(n, p)
	return windowInfo{
		Tracks:   n,
		Recycle:  recycle,
		BinStart: max(1, n-recycle),
		Fraction: float64(recycle) / float64(n),
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	params := sessionParams()

	sizes := []int{cfg.Playlist.Size}
	if optCount > 0 {
		sizes = []int{optCount}
	}
	if windowSweep {
		sizes = []int{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}
	}

	infos := make([]windowInfo, len(sizes))
	for i, n := range sizes {
		infos[i] = windowFor(n, params)
	}

	if JSONOutput() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(infos) == 1 {
			return enc.Encode(infos[0])
		}
		return enc.Encode(infos)
	}

	table := NewTable("TRACKS", "RECYCLE", "BIN STARTS AT", "FRACTION")
	for _, info := range infos {
		table.Row(
			fmt.Sprintf("%d", info.Tracks),
			fmt.Sprintf("%d", info.Recycle),
			fmt.Sprintf("%d", info.BinStart),
			fmt.Sprintf("%.1f%%", info.Fraction*100),
		)
	}
	table.Flush()
	return nil
}
