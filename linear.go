package intersect

import (
	"math"
)

// Epsilon is the absolute tolerance used to classify nearly parallel lines and
// nearly tangent circles. Inputs within Epsilon of a threshold may flip
// between classifications.
const Epsilon = 1e-9

// PointPointIntersection intersects two points. They intersect only if they
// are exactly equal.
func PointPointIntersection(a, b Point) Intersection {
	if a == b {
		return NewIntersection(Intersecting, a)
	}
	return NewIntersection(NoIntersection)
}

// PointPointIntersects reports whether two points coincide; see
// [PointPointIntersection].
func PointPointIntersects(a, b Point) bool {
	return a == b
}

// PointSegmentIntersection intersects the point p with the segment from a1 to
// a2.
//
// The point has to be exactly collinear with the segment and lie within its
// span; no tolerance is applied. Points computed with rounding error, such as
// the midpoint of a diagonal segment, may be rejected.
func PointSegmentIntersection(p, a1, a2 Point) Intersection {
	if p == a1 || p == a2 {
		return NewIntersection(Intersecting, p)
	}
	if p.Sub(a1).Cross(a2.Sub(a1)) != 0 {
		return NewIntersection(NoIntersection)
	}
	if within(p.X, a1.X, a2.X) && within(p.Y, a1.Y, a2.Y) {
		return NewIntersection(Intersecting, p)
	}
	return NewIntersection(NoIntersection)
}

// PointSegmentIntersects reports whether p lies on the segment from a1 to a2;
// see [PointSegmentIntersection].
func PointSegmentIntersects(p, a1, a2 Point) bool {
	return PointSegmentIntersection(p, a1, a2).Intersects()
}

// within reports whether v lies strictly between a and b, or equals both if
// they are the same.
func within(v, a, b float64) bool {
	if a == b {
		return v == a
	}
	return (a < v && v < b) || (b < v && v < a)
}

// SegmentSegmentIntersection intersects the segment from a1 to a2 with the
// segment from b1 to b2. Touching end points count as an intersection.
//
// Parallel segments that lie on the same line and overlap along a stretch are
// [Coincident]; if they only share an end point, that point is reported as an
// [Intersecting]. Any other pair of parallel segments doesn't intersect.
func SegmentSegmentIntersection(a1, a2, b1, b2 Point) Intersection {
	switch {
	case a1 == a2:
		return PointSegmentIntersection(a1, b1, b2)
	case b1 == b2:
		return PointSegmentIntersection(b1, a1, a2)
	}

	u := a2.Sub(a1)
	v := b2.Sub(b1)
	w := b1.Sub(a1)
	d := u.Cross(v)
	if math.Abs(d) < Epsilon {
		if math.Abs(u.Cross(w)) >= Epsilon {
			return NewIntersection(NoIntersection)
		}
		return collinearOverlap(Line{a1, a2}, b1, b2)
	}

	s := w.Cross(v) / d
	t := w.Cross(u) / d
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return NewIntersection(NoIntersection)
	}
	return NewIntersection(Intersecting, a1.Translate(u.Mul(s)))
}

// SegmentSegmentIntersects reports whether two segments intersect; see
// [SegmentSegmentIntersection].
func SegmentSegmentIntersects(a1, a2, b1, b2 Point) bool {
	return SegmentSegmentIntersection(a1, a2, b1, b2).Intersects()
}

// collinearOverlap classifies the overlap of l and the segment from b1 to b2,
// which lie on the same line.
func collinearOverlap(l Line, b1, b2 Point) Intersection {
	t0 := l.param(b1)
	t1 := l.param(b2)
	lo := max(0, min(t0, t1))
	hi := min(1, max(t0, t1))
	switch {
	case lo > hi:
		return NewIntersection(NoIntersection)
	case lo == hi:
		return NewIntersection(Intersecting, l.Eval(lo))
	default:
		return NewIntersection(Coincident)
	}
}

// LineLineIntersection intersects the infinite line through a1 and a2 with
// the infinite line through b1 and b2.
//
// Distinct parallel lines are [Parallel], identical lines [Coincident].
// A line through two equal points is degenerate and intersects nothing.
func LineLineIntersection(a1, a2, b1, b2 Point) Intersection {
	a, b := Line{a1, a2}, Line{b1, b2}
	if a.IsDegenerate() || b.IsDegenerate() {
		return NewIntersection(NoIntersection)
	}
	u := a2.Sub(a1)
	if math.Abs(u.Cross(b2.Sub(b1))) < Epsilon {
		if math.Abs(u.Cross(b1.Sub(a1))) < Epsilon {
			return NewIntersection(Coincident)
		}
		return NewIntersection(Parallel)
	}
	pt, ok := a.CrossingPoint(b)
	if !ok {
		return NewIntersection(Parallel)
	}
	return NewIntersection(Intersecting, pt)
}

// LineLineIntersects reports whether two infinite lines intersect or coincide;
// see [LineLineIntersection].
func LineLineIntersects(a1, a2, b1, b2 Point) bool {
	return LineLineIntersection(a1, a2, b1, b2).Intersects()
}

// SegmentRectIntersection intersects the segment from a1 to a2 with the
// outline of the rectangle spanned by the corners r1 and r2.
//
// A segment entirely inside the rectangle doesn't intersect its outline.
func SegmentRectIntersection(a1, a2, r1, r2 Point) Intersection {
	var acc accumulator
	for _, e := range NewRectFromPoints(r1, r2).Edges() {
		acc.add(SegmentSegmentIntersection(a1, a2, e.P0, e.P1))
	}
	return acc.result(NoIntersection)
}

// SegmentRectIntersects reports whether a segment meets a rectangle's outline.
// Disjoint bounding boxes are rejected before falling back to
// [SegmentRectIntersection].
func SegmentRectIntersects(a1, a2, r1, r2 Point) bool {
	if boxesDisjoint(segmentBox(a1, a2), NewRectFromPoints(r1, r2)) {
		return false
	}
	return SegmentRectIntersection(a1, a2, r1, r2).Intersects()
}

// SegmentPolygonIntersection intersects the segment from a1 to a2 with the
// outline of a polygon.
func SegmentPolygonIntersection(a1, a2 Point, poly []Point) Intersection {
	var acc accumulator
	for e := range Polygon(poly).Edges() {
		acc.add(SegmentSegmentIntersection(a1, a2, e.P0, e.P1))
	}
	return acc.result(NoIntersection)
}

// SegmentPolygonIntersects reports whether a segment meets a polygon's outline.
// Disjoint bounding boxes are rejected before falling back to
// [SegmentPolygonIntersection].
func SegmentPolygonIntersects(a1, a2 Point, poly []Point) bool {
	if boxesDisjoint(segmentBox(a1, a2), polygonBox(poly)) {
		return false
	}
	return SegmentPolygonIntersection(a1, a2, poly).Intersects()
}

// RectRectIntersection intersects the outlines of two rectangles, each
// spanned by two corners.
func RectRectIntersection(a1, a2, b1, b2 Point) Intersection {
	var acc accumulator
	for _, e := range NewRectFromPoints(a1, a2).Edges() {
		acc.add(SegmentRectIntersection(e.P0, e.P1, b1, b2))
	}
	return acc.result(NoIntersection)
}

// RectRectIntersects reports whether the outlines of two rectangles meet.
// Disjoint bounding boxes are rejected before falling back to
// [RectRectIntersection].
func RectRectIntersects(a1, a2, b1, b2 Point) bool {
	if boxesDisjoint(NewRectFromPoints(a1, a2), NewRectFromPoints(b1, b2)) {
		return false
	}
	return RectRectIntersection(a1, a2, b1, b2).Intersects()
}

// RectPolygonIntersection intersects the outline of the rectangle spanned by
// r1 and r2 with the outline of a polygon.
func RectPolygonIntersection(r1, r2 Point, poly []Point) Intersection {
	var acc accumulator
	for _, e := range NewRectFromPoints(r1, r2).Edges() {
		acc.add(SegmentPolygonIntersection(e.P0, e.P1, poly))
	}
	return acc.result(NoIntersection)
}

// RectPolygonIntersects reports whether a rectangle's outline meets a polygon's
// outline. Disjoint bounding boxes are rejected before falling back to
// [RectPolygonIntersection].
func RectPolygonIntersects(r1, r2 Point, poly []Point) bool {
	if boxesDisjoint(NewRectFromPoints(r1, r2), polygonBox(poly)) {
		return false
	}
	return RectPolygonIntersection(r1, r2, poly).Intersects()
}

// PolygonPolygonIntersection intersects the outlines of two polygons.
func PolygonPolygonIntersection(p1, p2 []Point) Intersection {
	var acc accumulator
	for e := range Polygon(p1).Edges() {
		acc.add(SegmentPolygonIntersection(e.P0, e.P1, p2))
	}
	return acc.result(NoIntersection)
}

// PolygonPolygonIntersects reports whether the outlines of two polygons meet.
// Disjoint bounding boxes are rejected before falling back to
// [PolygonPolygonIntersection].
func PolygonPolygonIntersects(p1, p2 []Point) bool {
	if boxesDisjoint(polygonBox(p1), polygonBox(p2)) {
		return false
	}
	return PolygonPolygonIntersection(p1, p2).Intersects()
}
