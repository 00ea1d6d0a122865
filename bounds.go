package intersect

import (
	"math"

	"github.com/golang/geo/r2"
)

// boxMargin is how far bounding boxes are grown before comparing them,
// relative to the magnitude of their coordinates, so that shapes touching
// within the algorithms' tolerances aren't rejected.
const boxMargin = 1e-7

func (r Rect) toR2() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: r.X0, Y: r.Y0}, r2.Point{X: r.X1, Y: r.Y1})
}

// boxesDisjoint reports whether two conservative bounding boxes are
// separated. If they are, the shapes they enclose can't intersect.
//
// NaN coordinates never count as disjoint.
func boxesDisjoint(a, b Rect) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	ra := a.toR2().ExpandedByMargin(boxMargin * max(1, a.extent()))
	return !ra.Intersects(b.toR2())
}

// extent returns the largest magnitude of any of the rectangle's coordinates.
func (r Rect) extent() float64 {
	return max(math.Abs(r.X0), math.Abs(r.Y0), math.Abs(r.X1), math.Abs(r.Y1))
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

func segmentBox(a1, a2 Point) Rect {
	return NewRectFromPoints(a1, a2)
}

func circleBox(c Point, r float64) Rect {
	return Circle{Center: c, Radius: r}.BoundingBox()
}

func ellipseBox(c Point, rx, ry, angle float64) Rect {
	return NewEllipse(c, Vec(rx, ry), angle).BoundingBox()
}

func polygonBox(poly []Point) Rect {
	return Polygon(poly).BoundingBox()
}

func quadBox(p0, p1, p2 Point) Rect {
	return QuadBez{p0, p1, p2}.BoundingBox()
}

func cubicBox(p0, p1, p2, p3 Point) Rect {
	return CubicBez{p0, p1, p2, p3}.BoundingBox()
}
