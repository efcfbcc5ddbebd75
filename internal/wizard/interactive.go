package wizard

import (
	"os"

	"golang.org/x/term"

	"mixtape/internal/core"
	"mixtape/internal/library"
)

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PromptPlaylist shows the playlist picker and returns tracks for the
// chosen preset. The second return is false when the user cancelled,
// in which case the caller should fall back to its defaults.
func PromptPlaylist() ([]core.Track, bool, error) {
	preset, err := RunPicker(Presets())
	if err != nil {
		return nil, false, err
	}
	if preset == nil {
		return nil, false, nil
	}
	return library.Generate(preset.Size), true, nil
}
