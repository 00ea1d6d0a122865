package intersect

import (
	"testing"
)

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(-1.2, 0.4)}
	left, right := c.Subdivide()
	diff(t, c.P0, left.P0)
	diff(t, c.P3, right.P3)
	diff(t, left.P3, right.P0)

	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, left.Eval(ts), c.Eval(ts/2), epsilon)
		assertNear(t, right.Eval(ts), c.Eval(0.5+ts/2), epsilon)
	}
}

func TestCubicBezPolys(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(-1.2, 0.4)}
	x, y := c.Polys()
	if x.Degree() != 3 || y.Degree() != 3 {
		t.Fatalf("got degrees %d and %d, want 3", x.Degree(), y.Degree())
	}
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, Pt(x.Eval(ts), y.Eval(ts)), c.Eval(ts), epsilon)
	}

	// A raised quadratic has no cubic term.
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Raise()
	diff(t, Vec(0, 0), q.Coefficients()[3], approx(1e-12))
}

func TestCubicBezTransform(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(2, -2), Pt(3, 0)}
	aff := Translate(Vec(2, -1)).Mul(Rotate(0.3)).Mul(Scale(2, 0.5))
	ct := c.Transform(aff)
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, ct.Eval(ts), c.Eval(ts).Transform(aff), 1e-12)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(2, -2), Pt(3, 0)}
	box := c.BoundingBox()
	diff(t, Rect{0, -2, 3, 2}, box)
	const n = 100
	for i := range n + 1 {
		pt := c.Eval(float64(i) / n)
		if pt.X < box.X0 || pt.X > box.X1 || pt.Y < box.Y0 || pt.Y > box.Y1 {
			t.Errorf("point %s lies outside the bounding box %v", pt, box)
		}
	}
}
