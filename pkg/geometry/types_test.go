package geometry

import (
	"testing"
)

func TestRect_Contains(t *testing.T) {
	r := NewRect(50, 100, 200, 200)

	tests := []struct {
		p    Point2D
		want bool
	}{
		{NewPoint2D(50, 100), true},   // top-left corner
		{NewPoint2D(250, 300), true},  // bottom-right corner
		{NewPoint2D(150, 200), true},  // center
		{NewPoint2D(49.9, 200), false},
		{NewPoint2D(150, 300.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_EdgesAndCenter(t *testing.T) {
	r := NewRect(50, 100, 200, 300)

	if r.Right() != 250 {
		t.Errorf("Right = %v, want 250", r.Right())
	}
	if r.Bottom() != 400 {
		t.Errorf("Bottom = %v, want 400", r.Bottom())
	}
	if c := r.Center(); c.X != 150 || c.Y != 250 {
		t.Errorf("Center = %+v, want {150 250}", c)
	}
}

func TestRect_Empty(t *testing.T) {
	if NewRect(0, 0, 100, 100).Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !NewRect(0, 0, 0, 100).Empty() {
		t.Error("zero-width rect not reported empty")
	}
	if !NewRect(0, 0, 100, -1).Empty() {
		t.Error("negative-height rect not reported empty")
	}
}

func TestPoint2D_Arithmetic(t *testing.T) {
	a := NewPoint2D(3, 4)
	b := NewPoint2D(1, 2)

	if got := a.Add(b); got != (Point2D{4, 6}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Point2D{2, 2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Point2D{6, 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Distance(Point2D{}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
