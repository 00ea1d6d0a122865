package intersect

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(2.5, 5), Pt(0, 0).Lerp(Pt(10, 20), 0.25))
	diff(t, Pt(5, 10), Pt(0, 0).Midpoint(Pt(10, 20)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointMinMax(t *testing.T) {
	a, b := Pt(1, 5), Pt(3, 2)
	diff(t, Pt(1, 2), a.Min(b))
	diff(t, Pt(3, 5), a.Max(b))
	if a.LessEq(b) || b.LessEq(a) {
		t.Error("points with mixed ordering compared as ordered")
	}
	if !a.Min(b).LessEq(a) || !a.Max(b).GreaterEq(b) {
		t.Error("min and max should bound both points")
	}
}

func TestPointNonFinite(t *testing.T) {
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() {
		t.Error("finite point reported as non-finite")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN point not detected")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("infinite point not detected")
	}
}

func TestPointString(t *testing.T) {
	diff(t, "(1.5, -2)", Pt(1.5, -2).String())
	diff(t, Rect{1.5, -2, 1.5, -2}, Pt(1.5, -2).BoundingBox())
}
