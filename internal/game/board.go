package game

import "fmt"

// Board dimensions. The grid is fixed: row 0 is the hidden spawn row, the
// bottom VisibleRows rows are shown on screen.
const (
	BoardRows   = 24
	BoardCols   = 10
	VisibleRows = 23
)

// fullRow has one bit set per column.
const fullRow = uint16(1<<BoardCols - 1)

// Board is the persistent grid of locked cells, one bit per cell.
// Each row is packed into a uint16; bit j of row r is column j.
// All coordinates handed to a Board must already be in range: the placement
// layer establishes position legality before any board access, so an
// out-of-range coordinate here is a programming error and panics.
type Board struct {
	rows [BoardRows]uint16
}

func (b *Board) check(row, col int) {
	if row < 0 || row >= BoardRows || col < 0 || col >= BoardCols {
		panic(fmt.Sprintf("game: board access out of range (%d, %d)", row, col))
	}
}

// Set marks the cell at (row, col) occupied or empty.
func (b *Board) Set(row, col int, occupied bool) {
	b.check(row, col)
	if occupied {
		b.rows[row] |= 1 << col
	} else {
		b.rows[row] &^= 1 << col
	}
}

// Occupied reports whether the cell at (row, col) is occupied.
func (b *Board) Occupied(row, col int) bool {
	b.check(row, col)
	return b.rows[row]&(1<<col) != 0
}

// Clear empties the whole board.
func (b *Board) Clear() {
	for r := range b.rows {
		b.rows[r] = 0
	}
}

// RowComplete reports whether every column of the given row is occupied.
func (b *Board) RowComplete(row int) bool {
	b.check(row, 0)
	return b.rows[row] == fullRow
}

// ShiftRowsDown removes the given row by copying every row above it down one
// position, then clearing row 0. Rows below fromRow are untouched.
func (b *Board) ShiftRowsDown(fromRow int) {
	b.check(fromRow, 0)
	for r := fromRow; r > 0; r-- {
		b.rows[r] = b.rows[r-1]
	}
	b.rows[0] = 0
}
