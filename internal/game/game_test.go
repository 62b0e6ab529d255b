package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot()

	// The first piece is already on the board, so the piece bonus is counted.
	if snap.Score != 1 {
		t.Errorf("Initial score = %d, want 1", snap.Score)
	}
	if snap.Level != 1 || snap.Lines != 0 {
		t.Errorf("Initial level/lines = %d/%d, want 1/0", snap.Level, snap.Lines)
	}
	if snap.StepMS != 1000 {
		t.Errorf("Initial step = %dms, want 1000", snap.StepMS)
	}
	if snap.Row != spawnRow || snap.Col != spawnCol || snap.Rotation != 0 {
		t.Errorf("Piece at (%d, %d) rot %d, want spawn position", snap.Row, snap.Col, snap.Rotation)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, want playing", snap.State)
	}
	if countCells(&g.board) != 0 {
		t.Error("Board should be empty after Reset")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := []core.Action{
		core.ActionLeft, core.ActionLeft, core.ActionRotateCW,
		core.ActionRight, core.ActionDrop, core.ActionRotateCCW,
		core.ActionLeft, core.ActionDrop,
	}

	run := func() Snapshot {
		g := newTestGame(t, 42)
		for _, act := range script {
			g.Handle(act)
			g.Tick()
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Same seed and command sequence diverged:\n%+v\n%+v", a, b)
	}
}

func TestShiftStopsAtWall(t *testing.T) {
	g := newTestGame(t, 3)

	for i := 0; i < 2*BoardCols; i++ {
		g.Handle(core.ActionLeft)
	}
	atWall := g.Snapshot()

	g.Handle(core.ActionLeft)
	if got := g.Snapshot(); got != atWall {
		t.Errorf("Shift into the wall changed state: %+v -> %+v", atWall, got)
	}
}

func TestRotateRollsBackWhenBlocked(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = ActivePiece{Shape: ShapeI, Rotation: 0, Row: 10, Col: 3}

	// Vertical I would occupy rows 10..13 at column 5; block the bottom cell.
	g.board.Set(13, 5, true)
	g.Handle(core.ActionRotateCW)
	if g.active.Rotation != 0 {
		t.Errorf("Blocked rotation changed rotation to %d", g.active.Rotation)
	}

	g.board.Set(13, 5, false)
	g.Handle(core.ActionRotateCW)
	if g.active.Rotation != 1 {
		t.Errorf("Unblocked rotation = %d, want 1", g.active.Rotation)
	}
}

func TestTickLocksAndRespawns(t *testing.T) {
	g := newTestGame(t, 5)

	locked := false
	for i := 0; i < 2*BoardRows && !locked; i++ {
		g.Tick()
		locked = countCells(&g.board) > 0
	}
	if !locked {
		t.Fatal("Piece never locked under gravity")
	}

	if n := countCells(&g.board); n != 4 {
		t.Errorf("Board has %d cells after first lock, want 4", n)
	}
	snap := g.Snapshot()
	if snap.Row != spawnRow || snap.Col != spawnCol {
		t.Errorf("Replacement piece at (%d, %d), want spawn position", snap.Row, snap.Col)
	}
	// One piece bonus for the locked piece, one for the replacement.
	if snap.Score != 2 {
		t.Errorf("Score after first lock = %d, want 2", snap.Score)
	}
	if snap.Lines != 0 {
		t.Errorf("Lines = %d, want 0 on an empty board lock", snap.Lines)
	}
}

func TestDropLocksImmediately(t *testing.T) {
	g := newTestGame(t, 5)

	g.Handle(core.ActionDrop)

	if n := countCells(&g.board); n != 4 {
		t.Errorf("Board has %d cells after drop, want 4", n)
	}
	if snap := g.Snapshot(); snap.Score != 2 {
		t.Errorf("Score after drop = %d, want 2", snap.Score)
	}
}

func TestLineClearScoringAndLevel(t *testing.T) {
	g := newTestGame(t, 1)

	// Bottom row complete except for the four columns the horizontal I
	// will fill on landing.
	for _, c := range []int{0, 1, 2, 7, 8, 9} {
		g.board.Set(BoardRows-1, c, true)
	}
	g.active = ActivePiece{Shape: ShapeI, Rotation: 0, Row: 0, Col: 3}

	g.Handle(core.ActionDrop)

	snap := g.Snapshot()
	if snap.Lines != 1 {
		t.Fatalf("Lines = %d, want 1", snap.Lines)
	}
	// 1 from init, +20 for the row, +1 for the replacement piece.
	if snap.Score != 22 {
		t.Errorf("Score = %d, want 22", snap.Score)
	}
	if snap.Level != 2 {
		t.Errorf("Level = %d, want 2 after one cleared row", snap.Level)
	}
	if snap.StepMS != 750 {
		t.Errorf("Step = %dms, want 750 after level-up", snap.StepMS)
	}
	if n := countCells(&g.board); n != 0 {
		t.Errorf("Board has %d cells after the clear, want 0", n)
	}
}

func TestLevelCapAndStepFloor(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 40; i++ {
		g.noteLineCleared()
	}

	if g.level != g.cfg.Leveling.MaxLevel {
		t.Errorf("Level = %d, want cap %d", g.level, g.cfg.Leveling.MaxLevel)
	}
	if g.stepMS < 1 {
		t.Errorf("Step = %dms, must never drop below 1", g.stepMS)
	}
	if g.stepMS >= 1000 {
		t.Errorf("Step = %dms, should have sped up from 1000", g.stepMS)
	}
}

func TestGameOverNearTop(t *testing.T) {
	g := newTestGame(t, 9)

	// Stack reaching row 3; column 0 stays open so nothing ever completes.
	for r := 3; r < BoardRows; r++ {
		for c := 1; c < BoardCols; c++ {
			g.board.Set(r, c, true)
		}
	}

	for i := 0; i < 5 && !g.gameOver; i++ {
		g.Tick()
	}
	if !g.gameOver {
		t.Fatal("Piece stuck at the top should end the game")
	}

	snap := g.Snapshot()
	if snap.State != StateGameOver {
		t.Errorf("State = %q, want game_over", snap.State)
	}
	if snap.StepMS != gameOverIdleMS {
		t.Errorf("Step = %dms in game over, want idle %d", snap.StepMS, gameOverIdleMS)
	}

	// All commands except Start are ignored now.
	g.Handle(core.ActionLeft)
	g.Handle(core.ActionDrop)
	g.Tick()
	if got := g.Snapshot(); got != snap {
		t.Errorf("Game-over state mutated by ignored input:\n%+v\n%+v", snap, got)
	}

	g.Handle(core.ActionStart)
	after := g.Snapshot()
	if after.State != StatePlaying || after.Score != 1 {
		t.Errorf("Start after game over should reset, got %+v", after)
	}
	if countCells(&g.board) != 0 {
		t.Error("Board should be empty after restart")
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	g := newTestGame(t, 1)

	// Fill the spawn area so the next spawn cannot fit, then force a spawn.
	for r := 0; r < 4; r++ {
		for c := 0; c < BoardCols; c++ {
			if r == 0 && c == 0 {
				continue // keep the row incomplete
			}
			g.board.Set(r, c, true)
		}
	}
	g.spawn()

	if !g.gameOver {
		t.Error("Spawn into an occupied area should end the game")
	}
}

func TestPauseFreezesGravity(t *testing.T) {
	g := newTestGame(t, 2)

	g.Handle(core.ActionPause)
	snap := g.Snapshot()
	if snap.State != StatePaused {
		t.Fatalf("State = %q after pause, want paused", snap.State)
	}

	g.Tick()
	g.Handle(core.ActionLeft)
	if got := g.Snapshot(); got != snap {
		t.Errorf("Paused state mutated:\n%+v\n%+v", snap, got)
	}

	g.Handle(core.ActionPause)
	g.Tick()
	if got := g.Snapshot(); got.Row != snap.Row+1 {
		t.Errorf("Gravity after unpause moved piece to row %d, want %d", got.Row, snap.Row+1)
	}
}

func TestRedrawDoesNotMutate(t *testing.T) {
	g := newTestGame(t, 2)
	snap := g.Snapshot()

	g.Handle(core.ActionRedraw)
	g.Handle(core.ActionNone)

	if got := g.Snapshot(); got != snap {
		t.Errorf("Redraw mutated state:\n%+v\n%+v", snap, got)
	}
}

func TestTooSmallWindowPauses(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("")
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Fatalf("State = %q on a tiny window, want paused_small_window", snap.State)
	}

	g.Tick()
	g.Handle(core.ActionLeft)
	if got := g.Snapshot(); got != snap {
		t.Errorf("Tiny-window state mutated:\n%+v\n%+v", snap, got)
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(t, 1)
	s := core.NewScreen(80, 24)

	g.Render(s)

	out := s.String()
	for _, want := range []string{"Blockfall", "Score: 1", "Level: 1", "Lines: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered screen missing %q", want)
		}
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 1)
	g.setGameOver()
	s := core.NewScreen(80, 24)

	g.Render(s)

	if !strings.Contains(s.String(), "Game Over") {
		t.Error("Rendered screen missing the game over overlay")
	}
}

func TestStateReport(t *testing.T) {
	g := newTestGame(t, 1)

	st := g.State()
	if st.Score != 1 || st.Level != 1 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, want fresh session values", st)
	}
}
