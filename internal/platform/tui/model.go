package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/finger-snake/internal/core"
	"github.com/vovakirdan/finger-snake/internal/game"
	"github.com/vovakirdan/finger-snake/internal/pointer"
	"github.com/vovakirdan/finger-snake/internal/storage"
)

// Model is the Bubble Tea model driving the game controller.
type Model struct {
	ctrl       *game.Controller
	screen     *core.Screen
	history    *storage.Store
	tracker    *pointer.Latest // Optional, fed by terminal mouse motion
	player     *BellPlayer
	keys       *KeyMapper
	mode       string // Difficulty preset, recorded with each finished run
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
	wasOver    bool
}

// NewModel creates a new Bubble Tea model for the given controller.
// The history store may be nil: finished runs are then not recorded.
func NewModel(ctrl *game.Controller, history *storage.Store, mode string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		ctrl:       ctrl,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    history,
		player:     NewBellPlayer(nil),
		keys:       NewKeyMapper(),
		mode:       mode,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.ctrl.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// SetTracker attaches a pointer holder that terminal mouse motion will
// publish to. Used when no camera tracker is wired in.
func (m *Model) SetTracker(tracker *pointer.Latest) {
	m.tracker = tracker
}

// handleMouse publishes mouse position as a normalized pointer sample.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.tracker == nil || m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return m, nil
	}
	m.tracker.Publish(pointer.Sample{
		X: float64(msg.X) / float64(m.config.ScreenW),
		Y: float64(msg.Y) / float64(m.config.ScreenH),
	})
	return m, nil
}

// handleKey buffers key presses into the input frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adjusts the screen buffer. The logical grid is fixed by
// configuration, so the simulation is left untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and reacts to its outcome.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.ctrl.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.ctrl.Muted() {
		for _, e := range result.Events {
			m.player.Play(e)
		}
	}

	m.recordRun(result.State)

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run to the history store, once per game over.
func (m *Model) recordRun(state core.GameState) {
	if !state.GameOver {
		m.wasOver = false
		m.runSaved = false
		return
	}
	if m.wasOver && m.runSaved {
		return
	}
	m.wasOver = true

	if m.history != nil && state.Score > 0 {
		snap := m.ctrl.Snapshot()
		//nolint:errcheck // Best-effort save, game continues regardless
		m.history.SaveRun(storage.RunEntry{
			Mode:          m.mode,
			Score:         state.Score,
			Length:        len(snap.Snake),
			DurationTicks: int(snap.Tick),
		})
	}
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model. When a tracker
// is supplied the terminal mouse stands in for the finger tracker.
func Run(ctrl *game.Controller, history *storage.Store, tracker *pointer.Latest, mode string, cfg core.RuntimeConfig) error {
	model := NewModel(ctrl, history, mode, cfg)
	model.SetTracker(tracker)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(), // Use alternate screen buffer
	}
	if tracker != nil {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	return err
}
