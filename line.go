package intersect

import (
	"math"
)

// Line represents a line segment from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// IsDegenerate reports whether both end points are the same point.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// BoundingBox returns the smallest rectangle enclosing the line. The result
// has non-negative width and height.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// param returns the parameter of pt along l, measured along the axis in
// which l has the larger extent. pt is assumed to lie on the carrier line.
func (l Line) param(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return (pt.X - l.P0.X) / d.X
	}
	return (pt.Y - l.P0.Y) / d.Y
}
