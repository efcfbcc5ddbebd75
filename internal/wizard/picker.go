package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Preset is a ready-made playlist size offered by the picker.
type Preset struct {
	Name        string
	Size        int
	Description string
}

// Presets returns the playlist sizes offered by the interactive picker.
func Presets() []Preset {
	return []Preset{
		{Name: "EP", Size: 5, Description: "a handful of tracks, repeats come fast"},
		{Name: "Album", Size: 12, Description: "a typical album"},
		{Name: "Mixtape", Size: 25, Description: "a long mix"},
		{Name: "Crate", Size: 100, Description: "a record crate"},
		{Name: "Library", Size: 1000, Description: "a full library"},
	}
}

// PickerModel is the bubbletea model for the playlist picker.
type PickerModel struct {
	presets  []Preset
	cursor   int
	selected *Preset
	width    int
	height   int
}

// Styles for the playlist picker
var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	pickerDetailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// NewPickerModel creates a new playlist picker model.
func NewPickerModel(presets []Preset) PickerModel {
	return PickerModel{
		presets: presets,
		width:   80,
		height:  20,
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit

		case "enter", " ":
			if len(m.presets) > 0 && m.cursor < len(m.presets) {
				m.selected = &m.presets[m.cursor]
				return m, tea.Quit
			}

		case "up", "k", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j", "ctrl+n":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			m.cursor = len(m.presets) - 1
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("🎵 Pick a playlist"))
	b.WriteString("\n\n")

	for i, preset := range m.presets {
		line := fmt.Sprintf("%s %s", preset.Name,
			pickerDetailStyle.Render(fmt.Sprintf("(%d tracks — %s)", preset.Size, preset.Description)))

		if i == m.cursor {
			b.WriteString(pickerSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(pickerItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pickerDetailStyle.Render("↑/↓ navigate • enter select • esc quit"))

	return b.String()
}

// Selected returns the selected preset, or nil if none.
func (m PickerModel) Selected() *Preset {
	return m.selected
}

// RunPicker runs the playlist picker and returns the selected preset.
func RunPicker(presets []Preset) (*Preset, error) {
	model := NewPickerModel(presets)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(PickerModel).Selected(), nil
}
