package game

import "fmt"

// ActivePiece is the currently falling piece. (Row, Col) anchors the top-left
// corner of its 4x4 mask in board coordinates. Positions that place set mask
// bits outside the board are only ever tested, never committed.
type ActivePiece struct {
	Shape    Shape
	Rotation int
	Row      int
	Col      int
}

// Mask returns the piece's occupancy pattern at its current rotation.
func (p ActivePiece) Mask() Mask {
	return RotationMask(p.Shape, p.Rotation)
}

// Fits reports whether the piece may legally occupy its current position:
// every set mask bit must map to a column in [0, BoardCols), a row below
// BoardRows, and an empty cell. Rows above the top are not rejected, so a
// piece whose bounding box starts above row 0 still fits as long as none of
// its set bits collide.
func Fits(b *Board, p ActivePiece) bool {
	m := p.Mask()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !m.At(i, j) {
				continue
			}
			col := p.Col + j
			if col < 0 || col >= BoardCols {
				return false
			}
			row := p.Row + i
			if row >= BoardRows {
				return false
			}
			if row >= 0 && b.Occupied(row, col) {
				return false
			}
		}
	}
	return true
}

// Commit locks the piece into the board, marking every cell under a set mask
// bit occupied. The piece must fit; committing a non-fitting piece is a
// programming error and panics rather than corrupting board state.
func Commit(b *Board, p ActivePiece) {
	if !Fits(b, p) {
		panic(fmt.Sprintf("game: commit of non-fitting piece %v at (%d, %d) rot %d",
			p.Shape, p.Row, p.Col, p.Rotation))
	}
	m := p.Mask()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if m.At(i, j) {
				b.Set(p.Row+i, p.Col+j, true)
			}
		}
	}
}

// ClearCompletedRows removes every complete row in a single top-to-bottom
// pass and returns how many were removed. Completeness is recomputed against
// the live board after each shift; rows shifted into already-scanned
// positions are not re-scanned. Since shifting copies rows unchanged, it
// cannot complete a row that was not complete before the pass.
func ClearCompletedRows(b *Board) int {
	count := 0
	for r := 0; r < BoardRows; r++ {
		if b.RowComplete(r) {
			b.ShiftRowsDown(r)
			count++
		}
	}
	return count
}
