package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{name: "inside", r: NewRect(0, 0, 10, 10), x: 5, y: 5, expected: true},
		{name: "top-left corner", r: NewRect(0, 0, 10, 10), x: 0, y: 0, expected: true},
		{name: "right edge exclusive", r: NewRect(0, 0, 10, 10), x: 10, y: 5, expected: false},
		{name: "bottom edge exclusive", r: NewRect(0, 0, 10, 10), x: 5, y: 10, expected: false},
		{name: "outside left", r: NewRect(5, 5, 10, 10), x: 4, y: 7, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min misbehaves")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max misbehaves")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs misbehaves")
	}
}
