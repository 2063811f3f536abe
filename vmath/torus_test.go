package vmath

import (
	"testing"
)

func TestWrapCoord(t *testing.T) {
	w := FromInt(800)

	cases := []struct{ in, want int64 }{
		{FromInt(100), FromInt(100)},
		{FromInt(800), 0},
		{FromInt(850), FromInt(50)},
		{FromInt(-50), FromInt(750)},
		{0, 0},
	}

	for _, c := range cases {
		if got := WrapCoord(c.in, w); got != c.want {
			t.Errorf("WrapCoord(%d) = %d, want %d", ToInt(c.in), ToInt(got), ToInt(c.want))
		}
	}
}

func TestWrapCoordAlwaysInBounds(t *testing.T) {
	w := FromInt(800)
	r := NewFastRand(99)

	for i := 0; i < 1000; i++ {
		x := r.Range(FromInt(-2400), FromInt(2400))
		got := WrapCoord(x, w)
		if got < 0 || got >= w {
			t.Fatalf("WrapCoord(%v) = %v outside [0, 800)", ToFloat(x), ToFloat(got))
		}
	}
}

func TestWrapDeltaShortestPath(t *testing.T) {
	w := FromInt(800)

	// Straight-line distance is 780, wrapped distance is 20 the other way
	d := WrapDelta(FromInt(10), FromInt(790), w)
	if d != FromInt(-20) {
		t.Errorf("WrapDelta(10, 790) = %d, want -20", ToInt(d))
	}

	d = WrapDelta(FromInt(790), FromInt(10), w)
	if d != FromInt(20) {
		t.Errorf("WrapDelta(790, 10) = %d, want 20", ToInt(d))
	}

	// No wrap when the direct path is shorter
	d = WrapDelta(FromInt(100), FromInt(300), w)
	if d != FromInt(200) {
		t.Errorf("WrapDelta(100, 300) = %d, want 200", ToInt(d))
	}
}

func TestCirclesIntersectAcrossEdge(t *testing.T) {
	w, h := FromInt(800), FromInt(600)
	r := FromInt(15)

	// Two circles straddling the vertical seam: x=5 and x=795 are 10 apart
	if !CirclesIntersect(FromInt(5), FromInt(300), r, FromInt(795), FromInt(300), r, w, h) {
		t.Error("Circles straddling the world edge should intersect")
	}

	// Same circles far apart without wrap consideration
	if CirclesIntersect(FromInt(5), FromInt(300), r, FromInt(400), FromInt(300), r, w, h) {
		t.Error("Distant circles should not intersect")
	}

	// Corner wrap: both axes wrapped
	if !CirclesIntersect(FromInt(2), FromInt(2), r, FromInt(798), FromInt(598), r, w, h) {
		t.Error("Circles straddling the world corner should intersect")
	}
}

func TestTorusDistSqSymmetric(t *testing.T) {
	w, h := FromInt(800), FromInt(600)
	x1, y1 := FromInt(10), FromInt(550)
	x2, y2 := FromInt(780), FromInt(30)

	a := TorusDistSq(x1, y1, x2, y2, w, h)
	b := TorusDistSq(x2, y2, x1, y1, w, h)
	if a != b {
		t.Errorf("TorusDistSq not symmetric: %d vs %d", a, b)
	}
}
