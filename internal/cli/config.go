package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"mixtape/internal/config"
	"mixtape/internal/shuffle"
	"mixtape/internal/wizard"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing mixtape configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the active config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a new configuration file.

When run in a terminal, prompts for a playlist size and shuffle preset;
otherwise writes the built-in defaults.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(os.Stdout)
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := config.Path()
	if path == "" {
		Minimal("no config file found (using built-in defaults)")
		return nil
	}
	Minimal(path)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath()
	if path == "" {
		return fmt.Errorf("could not determine config directory")
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c := config.Default()
	if wizard.IsTerminal() {
		if err := runInitForm(c); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	NormalF("Wrote config to %s", path)
	return nil
}

// Shuffle presets offered by the init form.
const (
	presetStandard   = "standard"
	presetFresh      = "fresh"
	presetTrueRandom = "true-random"
)

func runInitForm(c *config.Config) error {
	preset := presetStandard

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Playlist size").
				Description("How many tracks a generated playlist holds").
				Options(playlistSizeOptions()...).
				Value(&c.Playlist.Size),
			huh.NewSelect[string]().
				Title("Shuffle preset").
				Description("How strongly recently played tracks are held back").
				Options(shufflePresetOptions()...).
				Value(&preset),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("selection cancelled: %w", err)
	}

	applyShufflePreset(c, preset)
	return nil
}

func playlistSizeOptions() []huh.Option[int] {
	presets := wizard.Presets()
	options := make([]huh.Option[int], len(presets))
	for i, p := range presets {
		label := fmt.Sprintf("%s (%d tracks)", p.Name, p.Size)
		options[i] = huh.NewOption(label, p.Size)
	}
	return options
}

func shufflePresetOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Standard — repeats held back for most of the playlist", presetStandard),
		huh.NewOption("Fresh — repeats held back even harder", presetFresh),
		huh.NewOption("True random — no hold-back at all", presetTrueRandom),
	}
}

// applyShufflePreset writes the named preset's parameters into cfg.
// Unknown names leave the config untouched.
func applyShufflePreset(c *config.Config, name string) {
	switch name {
	case presetStandard:
		c.Shuffle.Randomness = shuffle.DefaultRandomness
		c.Shuffle.Buffer = shuffle.DefaultBuffer
		c.Shuffle.MinRecycle = shuffle.DefaultMinRecycle
	case presetFresh:
		c.Shuffle.Randomness = 0.02
		c.Shuffle.Buffer = 8
		c.Shuffle.MinRecycle = 0.1
	case presetTrueRandom:
		p := shuffle.TrueRandomParams()
		c.Shuffle.Randomness = p.Randomness
		c.Shuffle.Buffer = p.Buffer
		c.Shuffle.MinRecycle = p.MinRecycle
	}
}

func defaultConfigPath() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "mixtape", "config.toml")
}
