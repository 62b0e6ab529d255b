package game

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape identifies one of the seven piece types.
type Shape int

const (
	ShapeO Shape = iota
	ShapeT
	ShapeI
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// NumShapes is the size of the shape set.
const NumShapes = 7

// Mask is the 4x4 occupancy pattern of a piece at one rotation.
// Element i is row i of the bounding box; bit j of a row is column j.
type Mask [4]uint8

// At reports whether the mask has a set bit at (row, col) of the 4x4 box.
func (m Mask) At(row, col int) bool {
	return m[row]&(1<<col) != 0
}

// baseMasks holds each shape at rotation 0. The O piece sits in the center
// 2x2 of the box so it is invariant under box rotation.
var baseMasks = [NumShapes]Mask{
	ShapeO: {0b0000, 0b0110, 0b0110, 0b0000},
	ShapeT: {0b0000, 0b0111, 0b0010, 0b0000},
	ShapeI: {0b0000, 0b1111, 0b0000, 0b0000},
	ShapeS: {0b0000, 0b0110, 0b0011, 0b0000},
	ShapeZ: {0b0000, 0b0011, 0b0110, 0b0000},
	ShapeJ: {0b0000, 0b0111, 0b0100, 0b0000},
	ShapeL: {0b0000, 0b0111, 0b0001, 0b0000},
}

// masks caches every (shape, rotation) combination. Each rotation step is a
// quarter turn of the whole 4x4 box, which is an order-4 operation: four
// turns reproduce the base mask bit-for-bit.
var masks = buildMasks()

func buildMasks() [NumShapes][4]Mask {
	var table [NumShapes][4]Mask
	for s := 0; s < NumShapes; s++ {
		m := baseMasks[s]
		for r := 0; r < 4; r++ {
			table[s][r] = m
			m = rotate90(m)
		}
	}
	return table
}

// rotate90 turns a mask a quarter turn clockwise within its 4x4 box:
// the cell at (row, col) moves to (col, 3-row).
func rotate90(m Mask) Mask {
	var out Mask
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if m.At(row, col) {
				out[col] |= 1 << (3 - row)
			}
		}
	}
	return out
}

// RotationMask returns the mask for a shape at the given rotation index.
// The index wraps modulo 4 in both directions, so -1 is rotation 3.
func RotationMask(shape Shape, rotation int) Mask {
	return masks[shape][((rotation%4)+4)%4]
}

// shapeColors follows the palette of the classic terminal version.
var shapeColors = [NumShapes]core.Color{
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeI: core.ColorCyan,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

// Color returns the display color for the shape.
func (s Shape) Color() core.Color {
	if s < 0 || s >= NumShapes {
		return core.ColorDefault
	}
	return shapeColors[s]
}

func (s Shape) String() string {
	switch s {
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeI:
		return "I"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// RandomShape selects a shape uniformly at random. Intn over the exact shape
// count cannot produce a reserved value, so no retry is needed.
func RandomShape(rng *rand.Rand) Shape {
	return Shape(rng.Intn(NumShapes))
}
