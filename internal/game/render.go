package game

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Rendering characters, after the classic terminal version. Cells are drawn
// two runes wide to compensate for the terminal character aspect ratio.
const (
	charWall   = '|'
	charFloor  = '|'
	charActive = 'H'
	charFixed  = 'X'

	cellWidth = 2
	boardX    = 2 // left margin before the wall
	panelGap  = 4 // gap between the right wall and the side panel
)

// firstVisible is the topmost row drawn on screen; the spawn row above it
// stays hidden, as in the original.
const firstVisible = BoardRows - VisibleRows

func requiredWidth() int {
	return boardX + cellWidth*(BoardCols+2) + panelGap + 16
}

func requiredHeight() int {
	return VisibleRows + 1 // board plus floor line
}

// Render draws the full game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderActive(dst)
	g.renderPanel(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press S to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// cellX returns the screen column of a board column (left rune of the pair).
// Board column -1 and BoardCols address the walls.
func cellX(col int) int {
	return boardX + cellWidth*(col+1)
}

// renderBoard draws the walls, the floor and the locked cells.
func (g *Game) renderBoard(dst *core.Screen) {
	for r := firstVisible; r < BoardRows; r++ {
		y := r - firstVisible

		g.drawCell(dst, cellX(-1), y, charWall, core.ColorGray)
		g.drawCell(dst, cellX(BoardCols), y, charWall, core.ColorGray)

		for c := 0; c < BoardCols; c++ {
			if g.board.Occupied(r, c) {
				g.drawCell(dst, cellX(c), y, charFixed, core.ColorWhite)
			}
		}
	}

	// Floor line under the board
	floorY := VisibleRows
	for x := cellX(-1); x < cellX(BoardCols)+cellWidth; x++ {
		dst.SetColored(x, floorY, charFloor, core.ColorGray)
	}
}

// renderActive draws the falling piece. Rows above the visible area are
// skipped, matching the hidden spawn row of the original.
func (g *Game) renderActive(dst *core.Screen) {
	m := g.active.Mask()
	color := g.active.Shape.Color()
	for i := 0; i < 4; i++ {
		r := g.active.Row + i
		if r < firstVisible || r >= BoardRows {
			continue
		}
		for j := 0; j < 4; j++ {
			if !m.At(i, j) {
				continue
			}
			c := g.active.Col + j
			if c < 0 || c >= BoardCols {
				continue
			}
			g.drawCell(dst, cellX(c), r-firstVisible, charActive, color)
		}
	}
}

// drawCell paints one double-width board cell.
func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for k := 0; k < cellWidth; k++ {
		dst.SetColored(x+k, y, r, c)
	}
}

// renderPanel draws score, level and key help beside the board.
func (g *Game) renderPanel(dst *core.Screen) {
	x := cellX(BoardCols) + cellWidth + panelGap

	dst.DrawText(x, 1, "Blockfall")
	dst.DrawText(x, 3, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(x, 4, fmt.Sprintf("Level: %d", g.level))
	dst.DrawText(x, 5, fmt.Sprintf("Lines: %d", g.lines))

	help := []string{
		"←/j move left",
		"→/l move right",
		"↑/i rotate cw",
		"z/k rotate ccw",
		"space drop",
		"p pause  s restart",
		"q quit",
	}
	for i, line := range help {
		dst.DrawTextColored(x, 8+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
