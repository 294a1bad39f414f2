package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 34, 22)
	if r.X != 23 || r.Y != 1 {
		t.Errorf("CenteredRect origin = (%d, %d), expected (23, 1)", r.X, r.Y)
	}
	if r.W != 34 || r.H != 22 {
		t.Errorf("CenteredRect size = %dx%d, expected 34x22", r.W, r.H)
	}
}
