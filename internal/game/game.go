package game

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Spawn position of a fresh piece: the hidden top row, roughly centered.
const (
	spawnRow = 0
	spawnCol = 3
)

// gameOverIdleMS slows the gravity timer while the session sits in game
// over, so the tick loop does not spin for nothing.
const gameOverIdleMS = 1000

// Game implements the falling-block state machine. It owns the whole
// session: board, active piece, score, level and the terminal flags. All
// mutation happens through Handle and Tick, which the platform serializes.
type Game struct {
	cfg config.BlockfallConfig
	rng *rand.Rand

	board  Board
	active ActivePiece

	score        int
	lines        int // total rows cleared, for display
	lineProgress int // rows cleared since the last level-up
	level        int
	stepMS       int

	gameOver bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level variables set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new game. State is initialized by Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes or restarts the session: empty board, score and level
// back to their initial values, a fresh random piece at the spawn position.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		gameCfg = config.DefaultBlockfallConfig()
	}
	config.ApplyBlockfallPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	sanitize(&gameCfg)
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < requiredWidth() || g.screenH < requiredHeight()

	g.board.Clear()
	g.score = 0
	g.lines = 0
	g.lineProgress = 0
	g.level = 1
	g.stepMS = g.cfg.Timing.InitialStepMS
	g.gameOver = false
	g.paused = false

	g.spawn()
}

// sanitize guards against nonsense values from a hand-edited config file.
func sanitize(cfg *config.BlockfallConfig) {
	if cfg.Timing.InitialStepMS <= 0 {
		cfg.Timing.InitialStepMS = 1000
	}
	if cfg.Timing.SpeedFactor <= 0 || cfg.Timing.SpeedFactor > 1 {
		cfg.Timing.SpeedFactor = 0.75
	}
	if cfg.Leveling.MaxLevel < 1 {
		cfg.Leveling.MaxLevel = 1
	}
}

// Handle processes a single user command. Illegal moves are rejected
// silently by the fits-then-rollback pattern; they are not errors.
func (g *Game) Handle(act core.Action) {
	switch act {
	case core.ActionStart:
		// Start works from any state, including game over.
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return
	case core.ActionPause:
		if !g.gameOver && !g.tooSmall {
			g.paused = !g.paused
		}
		return
	case core.ActionRedraw, core.ActionNone:
		// Repainting is the platform's concern; session state is untouched.
		return
	}

	if g.gameOver || g.paused || g.tooSmall {
		return
	}

	switch act {
	case core.ActionLeft:
		g.tryShift(-1)
	case core.ActionRight:
		g.tryShift(1)
	case core.ActionRotateCW:
		g.tryRotate(1)
	case core.ActionRotateCCW:
		g.tryRotate(-1)
	case core.ActionDrop:
		g.drop()
	}
}

// Tick advances gravity by one step. Issued by the platform's scheduler,
// never by the user.
func (g *Game) Tick() {
	if g.gameOver || g.paused || g.tooSmall {
		return
	}
	g.gravityStep()
}

// StepMS returns the current gravity interval for the tick scheduler.
func (g *Game) StepMS() int {
	return g.stepMS
}

// Timing exposes the wrapping-clock parameters for the scheduler.
func (g *Game) Timing() config.TimingConfig {
	return g.cfg.Timing
}

// tryShift moves the active piece one column and reverts if it no longer
// fits.
func (g *Game) tryShift(dx int) {
	g.active.Col += dx
	if Fits(&g.board, g.active) {
		return
	}
	g.active.Col -= dx
}

// tryRotate turns the active piece one quarter turn and reverts if it no
// longer fits. A single attempt, no wall-kick search.
func (g *Game) tryRotate(dr int) {
	g.active.Rotation = ((g.active.Rotation+dr)%4 + 4) % 4
	if Fits(&g.board, g.active) {
		return
	}
	g.active.Rotation = ((g.active.Rotation-dr)%4 + 4) % 4
}

// gravityStep moves the active piece down one row. If it no longer fits the
// piece locks: commit, clear completed rows, spawn a replacement.
func (g *Game) gravityStep() {
	g.active.Row++
	if Fits(&g.board, g.active) {
		return
	}
	if g.active.Row <= spawnRow+2 {
		// Stuck right at the top.
		g.setGameOver()
	}
	g.active.Row--
	g.lockAndRespawn()
}

// drop moves the active piece to the lowest row where it still fits, then
// locks immediately.
func (g *Game) drop() {
	for {
		g.active.Row++
		if !Fits(&g.board, g.active) {
			break
		}
	}
	if g.active.Row <= spawnRow+2 {
		g.setGameOver()
	}
	g.active.Row--
	g.lockAndRespawn()
}

// lockAndRespawn commits the active piece, removes completed rows, applies
// scoring and leveling, and spawns the next piece. The whole sequence runs
// atomically within one tick's processing.
func (g *Game) lockAndRespawn() {
	Commit(&g.board, g.active)

	cleared := ClearCompletedRows(&g.board)
	if cleared > 0 {
		g.lines += cleared
		g.score += cleared * g.cfg.Scoring.PerRow
		for i := 0; i < cleared; i++ {
			g.noteLineCleared()
		}
	}

	g.spawn()
}

// noteLineCleared advances level progression for one cleared row.
func (g *Game) noteLineCleared() {
	if g.cfg.Leveling.LinesPerLevel <= 0 {
		return
	}
	g.lineProgress++
	if g.lineProgress < g.cfg.Leveling.LinesPerLevel {
		return
	}
	g.lineProgress = 0
	if g.level >= g.cfg.Leveling.MaxLevel {
		return
	}
	g.level++
	g.stepMS = int(float64(g.stepMS) * g.cfg.Timing.SpeedFactor)
	if g.stepMS < 1 {
		g.stepMS = 1
	}
}

// spawn creates a fresh random piece at the canonical spawn position. A
// spawn that does not fit ends the game.
func (g *Game) spawn() {
	g.active = ActivePiece{
		Shape:    RandomShape(g.rng),
		Rotation: 0,
		Row:      spawnRow,
		Col:      spawnCol,
	}
	g.score += g.cfg.Scoring.PerPiece
	if !Fits(&g.board, g.active) {
		g.setGameOver()
	}
}

func (g *Game) setGameOver() {
	g.gameOver = true
	g.stepMS = gameOverIdleMS
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
