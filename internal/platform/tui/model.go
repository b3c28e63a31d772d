package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voxel-cube/internal/core"
	"github.com/vovakirdan/voxel-cube/internal/sim"
	"github.com/vovakirdan/voxel-cube/internal/storage"
)

// Model is the Bubble Tea model for an interactive cube session.
type Model struct {
	engine     *sim.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	sessionID  string
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	quitting   bool
}

// NewModel creates a new Bubble Tea model around an engine.
func NewModel(engine *sim.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		engine:     engine,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		sessionID:  storage.NewSessionID(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick feeds the buffered input into the engine and advances one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.engine.Step(m.inputFrame)
	m.inputFrame.Clear()

	// Persist completed solves
	if result.Solved != nil && m.store != nil {
		rec := result.Solved
		//nolint:errcheck // Best-effort save, the session continues regardless
		m.store.SaveSolve(storage.SolveEntry{
			SessionID:     m.sessionID,
			CubeSize:      rec.CubeSize,
			ScrambleMoves: rec.ScrambleMoves,
			SeedText:      rec.SeedText,
			MoveCount:     rec.MoveCount,
			Duration:      rec.Duration,
		})
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(engine *sim.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(engine, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
