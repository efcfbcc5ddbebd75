package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mixtape/internal/shuffle"
	"mixtape/internal/stats"
	"mixtape/internal/tui/components"
	"mixtape/internal/tui/styles"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelNowPlaying Panel = iota
	PanelQueue
	PanelHistory
	PanelCounts
)

const maxHistory = 200

type keyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Step       key.Binding
	NextPanel  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Pause:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	Step:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "advance one play")),
	NextPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
	ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

type tickMsg time.Time

// Model is the main TUI model
type Model struct {
	session  *shuffle.Session
	tally    *stats.Tally
	interval time.Duration

	paused   bool
	focused  Panel
	width    int
	height   int
	showHelp bool

	history []components.PlayEntry

	nowPlaying  *components.NowPlaying
	queueView   *components.Queue
	historyView *components.History
	countsView  *components.Counts
}

// NewModel creates the TUI model over a session.
func NewModel(session *shuffle.Session, interval time.Duration) Model {
	return Model{
		session:     session,
		tally:       stats.NewTally(),
		interval:    interval,
		nowPlaying:  components.NewNowPlaying(),
		queueView:   components.NewQueue(),
		historyView: components.NewHistory(),
		countsView:  components.NewCounts(),
	}
}

// Run launches the dashboard and blocks until the user quits.
func Run(session *shuffle.Session, interval time.Duration) error {
	p := tea.NewProgram(NewModel(session, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused

		case key.Matches(msg, keys.Step):
			m.advance()

		case key.Matches(msg, keys.NextPanel):
			m.focused = (m.focused + 1) % 4

		case key.Matches(msg, keys.ScrollUp):
			if m.focused == PanelQueue {
				m.queueView.ScrollUp()
			}

		case key.Matches(msg, keys.ScrollDown):
			if m.focused == PanelQueue {
				m.queueView.ScrollDown()
			}

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

func (m *Model) advance() {
	track, rank := m.session.Advance()
	m.tally.Record(track.ID)

	entry := components.PlayEntry{Tick: m.tally.Plays(), Track: track, Rank: rank}
	m.history = append([]components.PlayEntry{entry}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.helpView()
	}

	topHeight := 8
	bottomHeight := m.height - topHeight - 2
	if bottomHeight < 5 {
		bottomHeight = 5
	}

	leftWidth := m.width * 3 / 5
	rightWidth := m.width - leftWidth - 2

	binStart, recycle := m.session.Window()

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.nowPlaying.Render(m.session.Peek(), !m.paused, m.tally.Plays(), binStart, recycle,
			leftWidth, topHeight, m.focused == PanelNowPlaying),
		m.countsView.Render(m.tally, rightWidth, topHeight, m.focused == PanelCounts),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.queueView.Render(m.session.Tracks(), binStart, leftWidth, bottomHeight, m.focused == PanelQueue),
		m.historyView.Render(m.history, rightWidth, bottomHeight, m.focused == PanelHistory),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) helpView() string {
	bindings := []key.Binding{
		keys.Quit, keys.Pause, keys.Step, keys.NextPanel,
		keys.ScrollUp, keys.ScrollDown, keys.Help,
	}

	lines := []string{styles.Title.Render("Keyboard shortcuts"), ""}
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, styles.Highlight.Render(h.Key)+"  "+styles.Muted.Render(h.Desc))
	}
	lines = append(lines, "", styles.Dim.Render("press ? to close"))

	return styles.Panel(true).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
