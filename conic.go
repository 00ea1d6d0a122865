package intersect

import (
	"math"
	"slices"
)

// conicTolerance scales the residual accepted when checking a candidate point
// of two conics against both of their implicit equations. Elimination yields
// extraneous roots, which this check filters.
const conicTolerance = 1e-3

// tangentSpread is the distance, relative to the smallest radius, below which
// two points found for the same tangency are merged into one.
const tangentSpread = 1e-3

// CircleSegmentIntersection intersects the circle around c with radius r and
// the segment from a1 to a2.
//
// If the segment misses the circle, the status is [Outside] when the segment
// lies outside of the circle, or [Inside] when the segment lies entirely
// within the circle. A segment touching the circle reports the touching point
// once. Circles with non-positive radii and segments with equal end points
// are degenerate and intersect nothing.
func CircleSegmentIntersection(c Point, r float64, a1, a2 Point) Intersection {
	if r <= 0 || a1 == a2 {
		return NewIntersection(NoIntersection)
	}
	return unitCircleSegment(
		a1.Sub(c).Mul(1/r),
		a2.Sub(c).Mul(1/r),
		Line{a1, a2},
	)
}

// CircleSegmentIntersects reports whether a segment meets a circle. Disjoint
// bounding boxes are rejected before falling back to
// [CircleSegmentIntersection].
func CircleSegmentIntersects(c Point, r float64, a1, a2 Point) bool {
	if boxesDisjoint(circleBox(c, r), segmentBox(a1, a2)) {
		return false
	}
	return CircleSegmentIntersection(c, r, a1, a2).Intersects()
}

// unitCircleSegment intersects the unit circle with the segment from p0 to p1,
// which is l mapped into the circle's frame. Points are evaluated on l.
func unitCircleSegment(p0, p1 Vec2, l Line) Intersection {
	d := p1.Sub(p0)
	a := d.Dot(d)
	b := 2 * p0.Dot(d)
	c := p0.Dot(p0) - 1
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return NewIntersection(Outside)
	case disc == 0:
		t := -b / (2 * a)
		if t < 0 || t > 1 {
			return NewIntersection(Outside)
		}
		return NewIntersection(Intersecting, l.Eval(t))
	}

	e := math.Sqrt(disc)
	t0 := (-b - e) / (2 * a)
	t1 := (-b + e) / (2 * a)
	in0 := t0 >= 0 && t0 <= 1
	in1 := t1 >= 0 && t1 <= 1
	if !in0 && !in1 {
		if (t0 < 0 && t1 < 0) || (t0 > 1 && t1 > 1) {
			return NewIntersection(Outside)
		}
		return NewIntersection(Inside)
	}
	out := NewIntersection(Intersecting)
	if in0 {
		out.AppendPoint(l.Eval(t0))
	}
	if in1 {
		out.AppendPoint(l.Eval(t1))
	}
	return out
}

// LineCircleIntersection intersects the infinite line through a1 and a2 with
// the circle around c with radius r. A line touching the circle is [Tangent]
// and reports the touching point; a line missing it is [Outside].
func LineCircleIntersection(a1, a2, c Point, r float64) Intersection {
	if r <= 0 || a1 == a2 {
		return NewIntersection(NoIntersection)
	}
	p0 := a1.Sub(c).Mul(1 / r)
	d := a2.Sub(a1).Mul(1 / r)
	a := d.Dot(d)
	b := 2 * p0.Dot(d)
	cc := p0.Dot(p0) - 1
	disc := b*b - 4*a*cc
	l := Line{a1, a2}
	switch {
	case disc < 0:
		return NewIntersection(Outside)
	case disc == 0:
		return NewIntersection(Tangent, l.Eval(-b/(2*a)))
	}
	e := math.Sqrt(disc)
	return NewIntersection(Intersecting,
		l.Eval((-b-e)/(2*a)),
		l.Eval((-b+e)/(2*a)),
	)
}

// LineCircleIntersects reports whether an infinite line meets a circle; see
// [LineCircleIntersection].
func LineCircleIntersects(a1, a2, c Point, r float64) bool {
	return LineCircleIntersection(a1, a2, c, r).Intersects()
}

// CircleCircleIntersection intersects two circles, each given by its center
// and radius.
//
// Circles that are too far apart are [Outside], circles nested in each other
// [Inside], and identical circles [Coincident]. Touching circles, externally
// or internally, report a single point. Non-positive radii intersect nothing.
func CircleCircleIntersection(c1 Point, r1 float64, c2 Point, r2 float64) Intersection {
	if r1 <= 0 || r2 <= 0 {
		return NewIntersection(NoIntersection)
	}
	d := c1.Distance(c2)
	switch {
	case d > r1+r2:
		return NewIntersection(Outside)
	case d < math.Abs(r1-r2):
		return NewIntersection(Inside)
	case d == 0:
		// Equal radii, otherwise the circles would be nested.
		return NewIntersection(Coincident)
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(max(0, r1*r1-a*a))
	dir := c2.Sub(c1).Mul(1 / d)
	foot := c1.Translate(dir.Mul(a))
	if math.Abs(d-(r1+r2)) < Epsilon || math.Abs(d-math.Abs(r1-r2)) < Epsilon {
		return NewIntersection(Intersecting, foot)
	}
	off := dir.Perp().Mul(h)
	return NewIntersection(Intersecting,
		foot.Translate(off),
		foot.Translate(off.Negate()),
	)
}

// CircleCircleIntersects reports whether two circles intersect, without
// computing the intersection points.
func CircleCircleIntersects(c1 Point, r1 float64, c2 Point, r2 float64) bool {
	if r1 <= 0 || r2 <= 0 {
		return false
	}
	d := c1.Distance(c2)
	return d <= r1+r2 && d >= math.Abs(r1-r2)
}

// CircleEllipseIntersection intersects the circle around c1 with radius r with
// an ellipse centered on c2, with radii rx and ry, rotated by angle radians.
func CircleEllipseIntersection(c1 Point, r float64, c2 Point, rx, ry, angle float64) Intersection {
	return EllipseEllipseIntersection(c1, r, r, 0, c2, rx, ry, angle)
}

// CircleEllipseIntersects reports whether a circle and an ellipse meet.
// Disjoint bounding boxes are rejected before falling back to
// [CircleEllipseIntersection].
func CircleEllipseIntersects(c1 Point, r float64, c2 Point, rx, ry, angle float64) bool {
	if boxesDisjoint(circleBox(c1, r), ellipseBox(c2, rx, ry, angle)) {
		return false
	}
	return CircleEllipseIntersection(c1, r, c2, rx, ry, angle).Intersects()
}

// CircleRectIntersection intersects a circle with the outline of the
// rectangle spanned by r1 and r2.
//
// If no edge meets the circle, the status is that of the first edge's
// intersection with the circle; see [CircleSegmentIntersection].
func CircleRectIntersection(c Point, r float64, r1, r2 Point) Intersection {
	var acc accumulator
	rect := NewRectFromPoints(r1, r2)
	for _, e := range rect.Edges() {
		acc.add(CircleSegmentIntersection(c, r, e.P0, e.P1))
	}
	return enclosure(acc.result(NoIntersection), rect.Corners()[0], Circle{c, r}.Contains)
}

// CircleRectIntersects reports whether a circle meets a rectangle's outline.
// Disjoint bounding boxes are rejected before falling back to
// [CircleRectIntersection].
func CircleRectIntersects(c Point, r float64, r1, r2 Point) bool {
	if boxesDisjoint(circleBox(c, r), NewRectFromPoints(r1, r2)) {
		return false
	}
	return CircleRectIntersection(c, r, r1, r2).Intersects()
}

// CirclePolygonIntersection intersects a circle with the outline of a
// polygon. The status follows the same rules as [CircleRectIntersection].
func CirclePolygonIntersection(c Point, r float64, poly []Point) Intersection {
	var acc accumulator
	for e := range Polygon(poly).Edges() {
		acc.add(CircleSegmentIntersection(c, r, e.P0, e.P1))
	}
	out := acc.result(NoIntersection)
	if len(poly) == 0 {
		return out
	}
	return enclosure(out, poly[0], Circle{c, r}.Contains)
}

// enclosure settles the status of an outline whose edges all miss a closed
// curve. Such an outline lies entirely inside or entirely outside of the
// curve, and so does its first vertex. Other results are returned unchanged.
func enclosure(out Intersection, vertex Point, contains func(Point) bool) Intersection {
	if out.Status != Inside && out.Status != Outside {
		return out
	}
	if contains(vertex) {
		out.Status = Inside
	} else {
		out.Status = Outside
	}
	return out
}

// CirclePolygonIntersects reports whether a circle meets a polygon's outline.
// Disjoint bounding boxes are rejected before falling back to
// [CirclePolygonIntersection].
func CirclePolygonIntersects(c Point, r float64, poly []Point) bool {
	if boxesDisjoint(circleBox(c, r), polygonBox(poly)) {
		return false
	}
	return CirclePolygonIntersection(c, r, poly).Intersects()
}

// EllipseSegmentIntersection intersects the ellipse centered on c, with radii
// rx and ry, rotated by angle radians, with the segment from a1 to a2.
//
// The segment is mapped into the frame in which the ellipse is the unit
// circle, where the status rules of [CircleSegmentIntersection] apply.
func EllipseSegmentIntersection(c Point, rx, ry, angle float64, a1, a2 Point) Intersection {
	if rx <= 0 || ry <= 0 || a1 == a2 {
		return NewIntersection(NoIntersection)
	}
	aff := ellipseFrame(c, rx, ry, angle)
	return unitCircleSegment(
		Vec2(a1.Transform(aff)),
		Vec2(a2.Transform(aff)),
		Line{a1, a2},
	)
}

// EllipseSegmentIntersects reports whether a segment meets an ellipse. Disjoint
// bounding boxes are rejected before falling back to
// [EllipseSegmentIntersection].
func EllipseSegmentIntersects(c Point, rx, ry, angle float64, a1, a2 Point) bool {
	if boxesDisjoint(ellipseBox(c, rx, ry, angle), segmentBox(a1, a2)) {
		return false
	}
	return EllipseSegmentIntersection(c, rx, ry, angle, a1, a2).Intersects()
}

// EllipseEllipseIntersection intersects two ellipses, each given by its
// center, radii and rotation.
//
// Identical ellipses are [Coincident]. Otherwise both ellipses are written as
// implicit conics and x is eliminated with [Bezout]. Every real root y of the
// resulting quartic is substituted back into the first conic to find
// candidate x coordinates, which are kept only if the point satisfies both
// conics.
func EllipseEllipseIntersection(
	c1 Point, rx1, ry1, angle1 float64,
	c2 Point, rx2, ry2, angle2 float64,
) Intersection {
	if rx1 <= 0 || ry1 <= 0 || rx2 <= 0 || ry2 <= 0 {
		return NewIntersection(NoIntersection)
	}
	return conicConic(
		ellipseConic(c1.X, c1.Y, rx1, ry1, angle1),
		ellipseConic(c2.X, c2.Y, rx2, ry2, angle2),
		min(rx1, ry1, rx2, ry2),
	)
}

// EllipseEllipseIntersects reports whether two ellipses meet. Disjoint bounding
// boxes are rejected before falling back to [EllipseEllipseIntersection].
func EllipseEllipseIntersects(
	c1 Point, rx1, ry1, angle1 float64,
	c2 Point, rx2, ry2, angle2 float64,
) bool {
	if boxesDisjoint(ellipseBox(c1, rx1, ry1, angle1), ellipseBox(c2, rx2, ry2, angle2)) {
		return false
	}
	return EllipseEllipseIntersection(c1, rx1, ry1, angle1, c2, rx2, ry2, angle2).Intersects()
}

// conicConic intersects two ellipses given as implicit conics. size is the
// smallest of their radii.
func conicConic(e1, e2 [6]float64, size float64) Intersection {
	norm1 := (e1[0]*e1[0] + 2*e1[1]*e1[1] + e1[2]*e1[2]) * conicTolerance
	norm2 := (e2[0]*e2[0] + 2*e2[1]*e2[1] + e2[2]*e2[2]) * conicTolerance

	res := Bezout(e1, e2)
	scale := math.Pow(conicScale(e1)*conicScale(e2), 2)
	if res.maxAbs() <= 1e-12*scale {
		// The conics are proportional, i.e. the same curve.
		return NewIntersection(Coincident)
	}

	// Tangent conics and points sharing a y coordinate make for double roots
	// in y, which rounding may split in two or push off the real axis.
	ys := append(res.Roots(), res.TouchingRoots(1e-9*scale)...)
	slices.Sort(ys)
	ys = slices.CompactFunc(ys, func(a, b float64) bool {
		return math.Abs(a-b) <= 1e-6*max(1, math.Abs(a))
	})

	out := NewIntersection(NoIntersection)
	for _, y := range ys {
		xPoly := Poly{
			e1[5] + y*(e1[4]+y*e1[2]),
			e1[3] + y*e1[1],
			e1[0],
		}
		xs := xPoly.Roots()
		if len(xs) == 0 || (len(xs) == 2 && xs[1]-xs[0] <= tangentSpread*size) {
			// At a vertical tangent of the first conic, x is a double root.
			xs = []float64{-xPoly[1] / (2 * xPoly[2])}
		}
		for _, x := range xs {
			if math.Abs(evalConic(e1, x, y)) > norm1 {
				continue
			}
			if math.Abs(evalConic(e2, x, y)) > norm2 {
				continue
			}
			pt := Pt(x, y)
			if slices.ContainsFunc(out.Points, func(q Point) bool {
				return q.Distance(pt) <= tangentSpread*size
			}) {
				continue
			}
			out.AppendPoint(pt)
		}
	}
	if out.Count() > 0 {
		out.Status = Intersecting
	}
	return out
}

func conicScale(e [6]float64) float64 {
	var m float64
	for _, c := range e {
		m = max(m, math.Abs(c))
	}
	return m
}

func evalConic(e [6]float64, x, y float64) float64 {
	return e[0]*x*x + e[1]*x*y + e[2]*y*y + e[3]*x + e[4]*y + e[5]
}

// EllipseRectIntersection intersects an ellipse with the outline of the
// rectangle spanned by r1 and r2. The status follows the same rules as
// [CircleRectIntersection].
func EllipseRectIntersection(c Point, rx, ry, angle float64, r1, r2 Point) Intersection {
	var acc accumulator
	rect := NewRectFromPoints(r1, r2)
	for _, e := range rect.Edges() {
		acc.add(EllipseSegmentIntersection(c, rx, ry, angle, e.P0, e.P1))
	}
	return enclosure(acc.result(NoIntersection), rect.Corners()[0], NewEllipse(c, Vec(rx, ry), angle).Contains)
}

// EllipseRectIntersects reports whether an ellipse meets a rectangle's outline.
// Disjoint bounding boxes are rejected before falling back to
// [EllipseRectIntersection].
func EllipseRectIntersects(c Point, rx, ry, angle float64, r1, r2 Point) bool {
	if boxesDisjoint(ellipseBox(c, rx, ry, angle), NewRectFromPoints(r1, r2)) {
		return false
	}
	return EllipseRectIntersection(c, rx, ry, angle, r1, r2).Intersects()
}

// EllipsePolygonIntersection intersects an ellipse with the outline of a
// polygon.
func EllipsePolygonIntersection(c Point, rx, ry, angle float64, poly []Point) Intersection {
	var acc accumulator
	for e := range Polygon(poly).Edges() {
		acc.add(EllipseSegmentIntersection(c, rx, ry, angle, e.P0, e.P1))
	}
	out := acc.result(NoIntersection)
	if len(poly) == 0 {
		return out
	}
	return enclosure(out, poly[0], NewEllipse(c, Vec(rx, ry), angle).Contains)
}

// EllipsePolygonIntersects reports whether an ellipse meets a polygon's
// outline. Disjoint bounding boxes are rejected before falling back to
// [EllipsePolygonIntersection].
func EllipsePolygonIntersects(c Point, rx, ry, angle float64, poly []Point) bool {
	if boxesDisjoint(ellipseBox(c, rx, ry, angle), polygonBox(poly)) {
		return false
	}
	return EllipsePolygonIntersection(c, rx, ry, angle, poly).Intersects()
}
