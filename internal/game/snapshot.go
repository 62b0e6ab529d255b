package game

// StateType names the coarse session state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Score    int
	Lines    int
	Level    int
	StepMS   int
	Shape    Shape
	Rotation int
	Row      int
	Col      int
	Board    [BoardRows]uint16
	State    StateType
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		StepMS:   g.stepMS,
		Shape:    g.active.Shape,
		Rotation: g.active.Rotation,
		Row:      g.active.Row,
		Col:      g.active.Col,
		Board:    g.board.rows,
		State:    state,
	}
}
