package game

import (
	"math/rand"
	"testing"
)

var allShapes = []Shape{ShapeO, ShapeT, ShapeI, ShapeS, ShapeZ, ShapeJ, ShapeL}

func TestRotationCycle(t *testing.T) {
	for _, s := range allShapes {
		m := RotationMask(s, 0)
		for i := 0; i < 4; i++ {
			m = rotate90(m)
		}
		if m != RotationMask(s, 0) {
			t.Errorf("Shape %v: four quarter turns should reproduce the base mask", s)
		}
	}
}

func TestRotationWrapsModulo4(t *testing.T) {
	for _, s := range allShapes {
		for r := 0; r < 4; r++ {
			if RotationMask(s, r) != RotationMask(s, r+4) {
				t.Errorf("Shape %v: rotation %d and %d should match", s, r, r+4)
			}
		}
		if RotationMask(s, -1) != RotationMask(s, 3) {
			t.Errorf("Shape %v: rotation -1 should equal rotation 3", s)
		}
	}
}

func TestRotateThenUnrotate(t *testing.T) {
	// +1 then -1 (and vice versa) reproduces the original mask
	for _, s := range allShapes {
		for r := 0; r < 4; r++ {
			if RotationMask(s, r+1-1) != RotationMask(s, r) {
				t.Errorf("Shape %v rot %d: +1 then -1 should be identity", s, r)
			}
			if RotationMask(s, r-1+1) != RotationMask(s, r) {
				t.Errorf("Shape %v rot %d: -1 then +1 should be identity", s, r)
			}
		}
	}
}

func TestSquareRotationInvariant(t *testing.T) {
	base := RotationMask(ShapeO, 0)
	for r := 1; r < 4; r++ {
		if RotationMask(ShapeO, r) != base {
			t.Errorf("O piece rotation %d differs from base; must be identical", r)
		}
	}
}

func TestMasksHaveFourCells(t *testing.T) {
	for _, s := range allShapes {
		for r := 0; r < 4; r++ {
			count := 0
			m := RotationMask(s, r)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					if m.At(i, j) {
						count++
					}
				}
			}
			if count != 4 {
				t.Errorf("Shape %v rot %d: mask has %d cells, expected 4", s, r, count)
			}
		}
	}
}

func TestRandomShapeCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Shape]int)

	for i := 0; i < 1000; i++ {
		s := RandomShape(rng)
		if s < 0 || s >= NumShapes {
			t.Fatalf("RandomShape produced out-of-range value %d", s)
		}
		seen[s]++
	}

	for _, s := range allShapes {
		if seen[s] == 0 {
			t.Errorf("Shape %v never produced in 1000 draws", s)
		}
	}
}

func TestShapeColors(t *testing.T) {
	for _, s := range allShapes {
		if s.Color() == 0 {
			t.Errorf("Shape %v should have a non-default color", s)
		}
	}
}
