package intersect

import (
	"math"
	"slices"
	"testing"
)

func TestPolygonEdges(t *testing.T) {
	tri := Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}
	want := []Line{
		{Pt(0, 0), Pt(4, 0)},
		{Pt(4, 0), Pt(0, 3)},
		{Pt(0, 3), Pt(0, 0)},
	}
	diff(t, want, slices.Collect(tri.Edges()))

	// Two vertices make a closed outline of two coincident edges.
	diff(t, []Line{{Pt(0, 0), Pt(1, 1)}, {Pt(1, 1), Pt(0, 0)}}, slices.Collect(Polygon{Pt(0, 0), Pt(1, 1)}.Edges()))

	if n := len(slices.Collect(Polygon{Pt(1, 1)}.Edges())); n != 0 {
		t.Errorf("got %d edges for a single vertex, want 0", n)
	}
	if n := len(slices.Collect(Polygon(nil).Edges())); n != 0 {
		t.Errorf("got %d edges for an empty polygon, want 0", n)
	}

	// Stopping early is respected.
	for range tri.Edges() {
		break
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	diff(t, Rect{0, 0, 4, 3}, Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.BoundingBox())
	diff(t, Rect{-1, -2, 5, 7}, Polygon{Pt(5, -2), Pt(-1, 7), Pt(2, 2), Pt(0, 0)}.BoundingBox())
	diff(t, Rect{}, Polygon{}.BoundingBox())
	diff(t, Rect{1, 2, 1, 2}, Polygon{Pt(1, 2)}.BoundingBox())

	if (Polygon{Pt(0, 0), Pt(1, 1)}).IsNaN() {
		t.Error("finite polygon reported as NaN")
	}
	if !(Polygon{Pt(0, 0), Pt(math.NaN(), 1)}).IsNaN() {
		t.Error("NaN vertex not detected")
	}
}
