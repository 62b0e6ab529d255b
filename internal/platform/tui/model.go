package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	engine "github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// timingProvider is implemented by games that carry their own wrapping-clock
// parameters. Games without it run on the scheduler defaults.
type timingProvider interface {
	Timing() config.TimingConfig
}

// Model is the Bubble Tea model that runs a game session. Key messages and
// gravity messages arrive through the same Update loop, so the game only ever
// processes one command or one tick at a time.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	scheduler  *engine.TickScheduler
	keys       *KeyMapper
	config     core.RuntimeConfig
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	modulus, stale := 0, 0
	if tp, ok := g.(timingProvider); ok {
		t := tp.Timing()
		modulus, stale = t.ClockModulusMS, t.StaleLimitMS
	}
	scheduler := engine.NewTickScheduler(
		engine.WallClock{ModulusMS: modulus},
		g.StepMS(), modulus, stale,
	)
	scheduler.Advance()

	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		scheduler: scheduler,
		keys:      NewKeyMapper(),
		config:    cfg,
	}
}

// Init starts the gravity timer.
func (m Model) Init() tea.Cmd {
	return gravityCmd(m.scheduler.RemainingMS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case GravityMsg:
		return m.handleGravity()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.game.Handle(action)

	switch action {
	case core.ActionStart:
		m.scoreSaved = false
		m.scheduler.SetStepMS(m.game.StepMS())
		m.scheduler.Resync()
	case core.ActionRedraw:
		return m, tea.ClearScreen
	}

	m.maybeSaveScore()
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new dimensions; a finished session keeps its result
	// on screen instead.
	if !m.game.State().GameOver {
		m.game.Reset(m.config)
		m.scoreSaved = false
		m.scheduler.SetStepMS(m.game.StepMS())
		m.scheduler.Resync()
	}

	return m, nil
}

// handleGravity processes one scheduled gravity tick and arms the next one.
func (m Model) handleGravity() (tea.Model, tea.Cmd) {
	m.game.Tick()
	m.maybeSaveScore()

	// Leveling may have changed the interval; pick it up before advancing.
	m.scheduler.SetStepMS(m.game.StepMS())
	m.scheduler.Advance()

	return m, gravityCmd(m.scheduler.RemainingMS())
}

// maybeSaveScore persists the result once per game over.
func (m *Model) maybeSaveScore() {
	state := m.game.State()
	if !state.GameOver || m.scoreSaved || state.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(state.Score, state.Lines, state.Level)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
