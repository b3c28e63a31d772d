package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voxel-cube/internal/storage"
)

const maxSolves = 100 // Max records to load per view

// SolvesKeyMap defines the key bindings for the solve board.
type SolvesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SolvesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSize, k.PrevSize, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SolvesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSize, k.PrevSize},
		{k.Quit},
	}
}

// DefaultSolvesKeyMap returns default key bindings.
func DefaultSolvesKeyMap() SolvesKeyMap {
	return SolvesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next size"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev size"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SolvesModel is the Bubble Tea model for the solve records screen.
// Records are grouped per cube size; tab cycles through sizes that have
// at least one recorded solve.
type SolvesModel struct {
	store      *storage.Store
	sizes      []int
	sizeCursor int
	solves     []storage.SolveEntry
	table      table.Model
	help       help.Model
	keys       SolvesKeyMap
	width      int
	height     int
	quitting   bool
}

// NewSolvesModel creates a new solve board model.
func NewSolvesModel(store *storage.Store, width, height int) SolvesModel {
	h := help.New()
	h.ShowAll = false

	m := SolvesModel{
		store:  store,
		keys:   DefaultSolvesKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.sizes = m.loadSizes()
	m.table = m.createTable()
	if len(m.sizes) > 0 {
		m.loadSolves(m.sizes[0])
	}
	return m
}

// loadSizes collects the cube sizes that have recorded solves.
func (m *SolvesModel) loadSizes() []int {
	if m.store == nil {
		return nil
	}
	recent, err := m.store.RecentSolves(maxSolves)
	if err != nil {
		return nil
	}
	seen := make(map[int]bool)
	var sizes []int
	for _, e := range recent {
		if !seen[e.CubeSize] {
			seen[e.CubeSize] = true
			sizes = append(sizes, e.CubeSize)
		}
	}
	return sizes
}

// createTable creates a new table with appropriate columns.
func (m *SolvesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Moves", Width: 8},
		{Title: "Scramble", Width: 10},
		{Title: "Time", Width: 10},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSolves loads records for the given cube size.
func (m *SolvesModel) loadSolves(cubeSize int) {
	if m.store == nil {
		m.solves = nil
		m.updateTableRows()
		return
	}

	solves, err := m.store.SolvesForSize(cubeSize, maxSolves)
	if err != nil {
		m.solves = nil
	} else {
		m.solves = solves
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current records.
func (m *SolvesModel) updateTableRows() {
	rows := make([]table.Row, len(m.solves))
	for i, e := range m.solves {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.MoveCount),
			fmt.Sprintf("%d", e.ScrambleMoves),
			e.Duration.Round(100 * time.Millisecond).String(),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the solve board model.
func (m SolvesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the solve board.
func (m SolvesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSize):
			if len(m.sizes) > 0 {
				m.sizeCursor = (m.sizeCursor + 1) % len(m.sizes)
				m.loadSolves(m.sizes[m.sizeCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSize):
			if len(m.sizes) > 0 {
				m.sizeCursor--
				if m.sizeCursor < 0 {
					m.sizeCursor = len(m.sizes) - 1
				}
				m.loadSolves(m.sizes[m.sizeCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the solve board.
func (m SolvesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST SOLVES"
	if len(m.sizes) > 0 {
		title = fmt.Sprintf("BEST SOLVES - %d³", m.sizes[m.sizeCursor])
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.solves) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No solves recorded yet.\nScramble a cube and bring it back!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunSolvesBoard runs the solve records screen.
func RunSolvesBoard(store *storage.Store, width, height int) error {
	model := NewSolvesModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
