package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"mixtape/internal/shuffle"
)

var (
	// Set via ldflags at build time
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		if JSONOutput() {
			info := map[string]string{
				"version":          Version,
				"commit":           Commit,
				"build_date":       BuildDate,
				"go_version":       runtime.Version(),
				"os":               runtime.GOOS,
				"arch":             runtime.GOARCH,
				"shuffle_defaults": shuffleDefaults(),
			}
			out, _ := json.MarshalIndent(info, "", "  ")
			fmt.Println(string(out))
			return
		}

		fmt.Printf("mixtape %s\n", Version)
		if Verbose() {
			fmt.Printf("  commit:           %s\n", Commit)
			fmt.Printf("  built:            %s\n", BuildDate)
			fmt.Printf("  go version:       %s\n", runtime.Version())
			fmt.Printf("  platform:         %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Printf("  shuffle defaults: %s\n", shuffleDefaults())
		}
	},
}

// shuffleDefaults describes the built-in shuffle parameters, so a bug
// report's version block shows which defaults the build ships with.
func shuffleDefaults() string {
	return fmt.Sprintf("randomness %g, buffer %d, min recycle %g",
		shuffle.DefaultRandomness, shuffle.DefaultBuffer, shuffle.DefaultMinRecycle)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
