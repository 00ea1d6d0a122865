package intersect

import (
	"math"
)

const (
	// paramTolerance is the slack allowed for curve parameters just outside of
	// [0, 1], so that intersections at end points aren't lost to rounding.
	paramTolerance = 1e-9

	// agreeTolerance is the largest difference between the parameters solving
	// the x and y equations of a curve for which both are taken to describe
	// the same point.
	agreeTolerance = 1e-4

	// coefficients of curves mapped into a frame of unit size that are
	// smaller than this are treated as zero.
	unitZero = 1e-12

	// touchTolerance is the largest distance, in a frame of unit size, by
	// which a coordinate may miss zero at its extremum and still be taken to
	// touch it.
	touchTolerance = 1e-8
)

// CubicSegmentIntersection intersects the cubic Bézier curve with control
// points p0 to p3 with the segment from a1 to a2.
//
// The segment's line is written implicitly as A·x + B·y + C = 0. Substituting
// the curve's coordinates yields a cubic in the curve parameter, whose roots
// in [0, 1] are the candidates; those that fall within the segment are
// reported. A curve lying on the segment's line is [Coincident] if it
// overlaps the segment.
func CubicSegmentIntersection(p0, p1, p2, p3, a1, a2 Point) Intersection {
	c := CubicBez{p0, p1, p2, p3}
	k := c.Coefficients()
	return curveSegment(k[:], c.Eval, c.BoundingBox(), a1, a2)
}

// CubicSegmentIntersects reports whether a cubic Bézier curve meets a segment.
// Disjoint bounding boxes are rejected before falling back to
// [CubicSegmentIntersection].
func CubicSegmentIntersects(p0, p1, p2, p3, a1, a2 Point) bool {
	if boxesDisjoint(cubicBox(p0, p1, p2, p3), segmentBox(a1, a2)) {
		return false
	}
	return CubicSegmentIntersection(p0, p1, p2, p3, a1, a2).Intersects()
}

// QuadSegmentIntersection intersects the quadratic Bézier curve with control
// points p0 to p2 with the segment from a1 to a2. It works like
// [CubicSegmentIntersection], one degree lower.
func QuadSegmentIntersection(p0, p1, p2, a1, a2 Point) Intersection {
	q := QuadBez{p0, p1, p2}
	k := q.Coefficients()
	return curveSegment(k[:], q.Eval, q.BoundingBox(), a1, a2)
}

// QuadSegmentIntersects reports whether a quadratic Bézier curve meets a
// segment. Disjoint bounding boxes are rejected before falling back to
// [QuadSegmentIntersection].
func QuadSegmentIntersects(p0, p1, p2, a1, a2 Point) bool {
	if boxesDisjoint(quadBox(p0, p1, p2), segmentBox(a1, a2)) {
		return false
	}
	return QuadSegmentIntersection(p0, p1, p2, a1, a2).Intersects()
}

// curveSegment intersects a curve of degree two or three, given by its
// power-basis coefficients k, with the segment from a1 to a2.
func curveSegment(k []Vec2, eval func(float64) Point, box Rect, a1, a2 Point) Intersection {
	if a1 == a2 {
		return NewIntersection(NoIntersection)
	}
	l := Line{a1, a2}
	n := Vec(a1.Y-a2.Y, a2.X-a1.X)
	offset := a1.X*a2.Y - a2.X*a1.Y

	var coeffs [4]float64
	var ref, size float64
	for i, v := range k {
		coeffs[i] = n.Dot(v)
		size = max(size, math.Abs(v.X), math.Abs(v.Y))
	}
	coeffs[0] += offset
	ref = (math.Abs(n.X)+math.Abs(n.Y))*size + math.Abs(offset)
	m := max(math.Abs(coeffs[1]), math.Abs(coeffs[2]), math.Abs(coeffs[3]))

	var ts []float64
	switch {
	case m <= RootTolerance*ref:
		// The curve doesn't move relative to the line: it lies on it or
		// parallel to it.
		if math.Abs(coeffs[0]) <= RootTolerance*ref && !boxesDisjoint(box, l.BoundingBox()) {
			return NewIntersection(Coincident)
		}
		return NewIntersection(NoIntersection)
	case math.Abs(coeffs[3]) <= RootTolerance*m:
		roots, nroots := SolveQuadratic(coeffs[0], coeffs[1], coeffs[2])
		for _, t := range roots[:nroots] {
			if t >= 0 && t <= 1 {
				ts = append(ts, t)
			}
		}
	default:
		c3 := coeffs[3]
		for _, t := range CubicRoots(coeffs[2]/c3, coeffs[1]/c3, coeffs[0]/c3) {
			if t != NoRoot {
				ts = append(ts, t)
			}
		}
	}

	out := NewIntersection(NoIntersection)
	for _, t := range ts {
		pt := eval(t)
		if s := l.param(pt); s >= -paramTolerance && s <= 1+paramTolerance {
			out.AppendPoint(pt)
		}
	}
	if out.Count() > 0 {
		out.Status = Intersecting
	}
	return out
}

// CubicCubicIntersection intersects two cubic Bézier curves, the first with
// control points a0 to a3, the second with control points b0 to b3.
//
// The parameter of the second curve is eliminated with a Bézout matrix
// resultant, yielding a polynomial of degree nine in the parameter of the
// first curve. Its roots in [0, 1] are accepted if the point they describe
// lies on the second curve. Curves tracing the same path over a stretch are
// [Coincident].
func CubicCubicIntersection(a0, a1, a2, a3, b0, b1, b2, b3 Point) Intersection {
	c1 := CubicBez{a0, a1, a2, a3}
	c2 := CubicBez{b0, b1, b2, b3}
	aff := unitFrame(c1.BoundingBox().Union(c2.BoundingBox()))
	x1, y1 := c1.Transform(aff).Polys()
	x2, y2 := c2.Transform(aff).Polys()
	return curveCurve(c1.Eval, x1, y1, x2, y2)
}

// CubicCubicIntersects reports whether two cubic Bézier curves meet. Disjoint
// bounding boxes are rejected before falling back to [CubicCubicIntersection].
func CubicCubicIntersects(a0, a1, a2, a3, b0, b1, b2, b3 Point) bool {
	if boxesDisjoint(cubicBox(a0, a1, a2, a3), cubicBox(b0, b1, b2, b3)) {
		return false
	}
	return CubicCubicIntersection(a0, a1, a2, a3, b0, b1, b2, b3).Intersects()
}

// QuadCubicIntersection intersects the quadratic Bézier curve with control
// points a0 to a2 with the cubic Bézier curve with control points b0 to b3.
// See [CubicCubicIntersection].
func QuadCubicIntersection(a0, a1, a2, b0, b1, b2, b3 Point) Intersection {
	q := QuadBez{a0, a1, a2}
	c := CubicBez{b0, b1, b2, b3}
	aff := unitFrame(q.BoundingBox().Union(c.BoundingBox()))
	x1, y1 := q.Transform(aff).Polys()
	x2, y2 := c.Transform(aff).Polys()
	return curveCurve(q.Eval, x1, y1, x2, y2)
}

// QuadCubicIntersects reports whether a quadratic and a cubic Bézier curve
// meet. Disjoint bounding boxes are rejected before falling back to
// [QuadCubicIntersection].
func QuadCubicIntersects(a0, a1, a2, b0, b1, b2, b3 Point) bool {
	if boxesDisjoint(quadBox(a0, a1, a2), cubicBox(b0, b1, b2, b3)) {
		return false
	}
	return QuadCubicIntersection(a0, a1, a2, b0, b1, b2, b3).Intersects()
}

// QuadQuadIntersection intersects two quadratic Bézier curves. See
// [CubicCubicIntersection].
func QuadQuadIntersection(a0, a1, a2, b0, b1, b2 Point) Intersection {
	q1 := QuadBez{a0, a1, a2}
	q2 := QuadBez{b0, b1, b2}
	aff := unitFrame(q1.BoundingBox().Union(q2.BoundingBox()))
	x1, y1 := q1.Transform(aff).Polys()
	x2, y2 := q2.Transform(aff).Polys()
	return curveCurve(q1.Eval, x1, y1, x2, y2)
}

// QuadQuadIntersects reports whether two quadratic Bézier curves meet. Disjoint
// bounding boxes are rejected before falling back to [QuadQuadIntersection].
func QuadQuadIntersects(a0, a1, a2, b0, b1, b2 Point) bool {
	if boxesDisjoint(quadBox(a0, a1, a2), quadBox(b0, b1, b2)) {
		return false
	}
	return QuadQuadIntersection(a0, a1, a2, b0, b1, b2).Intersects()
}

// unitFrame returns the transform mapping box onto a square of unit size
// centered on the origin. Resultants of curves are much better conditioned in
// that frame.
func unitFrame(box Rect) Affine {
	size := max(box.Width(), box.Height())
	if size == 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		size = 1
	}
	return Scale(1/size, 1/size).Mul(Translate(Vec2(box.Center()).Negate()))
}

// curveCurve intersects two curves given by their coordinate polynomials in a
// frame of unit size. eval evaluates the first curve in the original frame.
func curveCurve(eval func(float64) Point, x1, y1, x2, y2 Poly) Intersection {
	if curveDegree(padded(x1), padded(y1)) == 0 {
		// The first curve is a single point.
		if commonRoot(x2.AddScalar(-x1[0]), y2.AddScalar(-y1[0])) {
			return NewIntersection(Intersecting, eval(0))
		}
		return NewIntersection(NoIntersection)
	}

	cx, cy := padded(x2), padded(y2)
	n := curveDegree(cx, cy)
	res := curveResultant(x1, y1, cx, cy, n)
	if resultantVanishes(res, x1, y1, cx, cy, n) {
		if curvesOverlap(x1, y1, x2, y2) {
			return NewIntersection(Coincident)
		}
		return NewIntersection(NoIntersection)
	}

	out := NewIntersection(NoIntersection)
	for _, s := range res.RootsInInterval(0, 1) {
		if commonRoot(x2.AddScalar(-x1.Eval(s)), y2.AddScalar(-y1.Eval(s))) {
			out.AppendPoint(eval(s))
		}
	}
	if out.Count() > 0 {
		out.Status = Intersecting
	}
	return out
}

func padded(p Poly) [4]float64 {
	var out [4]float64
	copy(out[:], p)
	return out
}

// resultantVanishes reports whether the resultant of two curves is zero
// everywhere, which happens when they are pieces of the same algebraic curve.
// The resultant is homogeneous in the curves' coordinates, which gives the
// scale to compare against.
func resultantVanishes(res, x1, y1 Poly, x2, y2 [4]float64, n int) bool {
	var all, moving float64
	for _, c := range x1 {
		all = max(all, math.Abs(c))
	}
	for _, c := range y1 {
		all = max(all, math.Abs(c))
	}
	for i := range x2 {
		all = max(all, math.Abs(x2[i]), math.Abs(y2[i]))
		if i > 0 {
			moving = max(moving, math.Abs(x2[i]), math.Abs(y2[i]))
		}
	}
	return res.maxAbs() <= 1e-9*math.Pow(all*moving, float64(n))
}

// curvesOverlap reports whether an end point of either curve lies on the
// other curve.
func curvesOverlap(x1, y1, x2, y2 Poly) bool {
	for _, t := range [2]float64{0, 1} {
		if commonRoot(x2.AddScalar(-x1.Eval(t)), y2.AddScalar(-y1.Eval(t))) {
			return true
		}
		if commonRoot(x1.AddScalar(-x2.Eval(t)), y1.AddScalar(-y2.Eval(t))) {
			return true
		}
	}
	return false
}

// commonRoot reports whether x and y, polynomials in the same parameter,
// vanish for a common parameter in [0, 1]. Their roots are found
// independently and have to agree within agreeTolerance. A coordinate that
// is constant zero, as for a vertical or horizontal curve, places no
// constraint on the parameter.
func commonRoot(x, y Poly) bool {
	xr, xAll := unitRoots(x)
	yr, yAll := unitRoots(y)
	switch {
	case xAll && yAll:
		return true
	case xAll:
		return len(yr) > 0
	case yAll:
		return len(xr) > 0
	}
	for _, a := range xr {
		for _, b := range yr {
			if math.Abs(a-b) < agreeTolerance {
				return true
			}
		}
	}
	return false
}

// unitRoots returns the roots of p in [0, 1], including extrema at which p
// comes within touchTolerance of zero. If p is constant, it has no roots, and
// all reports whether the constant is zero. p is expected to describe a curve
// in a frame of unit size.
func unitRoots(p Poly) (roots []float64, all bool) {
	if len(p) == 0 {
		return nil, true
	}
	constant := true
	for _, c := range p[1:] {
		if math.Abs(c) > unitZero {
			constant = false
			break
		}
	}
	if constant {
		return nil, math.Abs(p[0]) <= paramTolerance
	}
	for _, r := range append(p.Roots(), p.TouchingRoots(touchTolerance)...) {
		if r >= -paramTolerance && r <= 1+paramTolerance {
			roots = append(roots, clamp(r, 0, 1))
		}
	}
	return roots, false
}

// CubicEllipseIntersection intersects the cubic Bézier curve with control
// points p0 to p3 with the ellipse centered on c, with radii rx and ry,
// rotated by angle radians.
//
// Bézier curves are affine invariant, so the control points are mapped into
// the frame in which the ellipse is the unit circle. Substituting the curve
// into x² + y² − 1 yields a polynomial of degree six.
func CubicEllipseIntersection(p0, p1, p2, p3, c Point, rx, ry, angle float64) Intersection {
	if rx <= 0 || ry <= 0 {
		return NewIntersection(NoIntersection)
	}
	bez := CubicBez{p0, p1, p2, p3}
	x, y := bez.Transform(ellipseFrame(c, rx, ry, angle)).Polys()
	return unitCircleCurve(bez.Eval, x, y)
}

// CubicEllipseIntersects reports whether a cubic Bézier curve meets an ellipse.
// Disjoint bounding boxes are rejected before falling back to
// [CubicEllipseIntersection].
func CubicEllipseIntersects(p0, p1, p2, p3, c Point, rx, ry, angle float64) bool {
	if boxesDisjoint(cubicBox(p0, p1, p2, p3), ellipseBox(c, rx, ry, angle)) {
		return false
	}
	return CubicEllipseIntersection(p0, p1, p2, p3, c, rx, ry, angle).Intersects()
}

// QuadEllipseIntersection intersects the quadratic Bézier curve with control
// points p0 to p2 with an ellipse. See [CubicEllipseIntersection].
func QuadEllipseIntersection(p0, p1, p2, c Point, rx, ry, angle float64) Intersection {
	if rx <= 0 || ry <= 0 {
		return NewIntersection(NoIntersection)
	}
	bez := QuadBez{p0, p1, p2}
	x, y := bez.Transform(ellipseFrame(c, rx, ry, angle)).Polys()
	return unitCircleCurve(bez.Eval, x, y)
}

// QuadEllipseIntersects reports whether a quadratic Bézier curve meets an
// ellipse. Disjoint bounding boxes are rejected before falling back to
// [QuadEllipseIntersection].
func QuadEllipseIntersects(p0, p1, p2, c Point, rx, ry, angle float64) bool {
	if boxesDisjoint(quadBox(p0, p1, p2), ellipseBox(c, rx, ry, angle)) {
		return false
	}
	return QuadEllipseIntersection(p0, p1, p2, c, rx, ry, angle).Intersects()
}

// CubicCircleIntersection intersects a cubic Bézier curve with the circle
// around c with radius r.
func CubicCircleIntersection(p0, p1, p2, p3, c Point, r float64) Intersection {
	return CubicEllipseIntersection(p0, p1, p2, p3, c, r, r, 0)
}

// CubicCircleIntersects reports whether a cubic Bézier curve meets a circle;
// see [CubicCircleIntersection].
func CubicCircleIntersects(p0, p1, p2, p3, c Point, r float64) bool {
	return CubicEllipseIntersects(p0, p1, p2, p3, c, r, r, 0)
}

// QuadCircleIntersection intersects a quadratic Bézier curve with the circle
// around c with radius r.
func QuadCircleIntersection(p0, p1, p2, c Point, r float64) Intersection {
	return QuadEllipseIntersection(p0, p1, p2, c, r, r, 0)
}

// QuadCircleIntersects reports whether a quadratic Bézier curve meets a circle;
// see [QuadCircleIntersection].
func QuadCircleIntersects(p0, p1, p2, c Point, r float64) bool {
	return QuadEllipseIntersects(p0, p1, p2, c, r, r, 0)
}

// ellipseFrame returns the transform mapping the ellipse onto the unit
// circle.
func ellipseFrame(c Point, rx, ry, angle float64) Affine {
	return Scale(1/rx, 1/ry).
		Mul(Rotate(-angle)).
		Mul(Translate(Vec2(c).Negate()))
}

func unitCircleCurve(eval func(float64) Point, x, y Poly) Intersection {
	p := x.Mul(x).Add(y.Mul(y)).AddScalar(-1)
	out := NewIntersection(NoIntersection)
	for _, t := range p.RootsInInterval(0, 1) {
		out.AppendPoint(eval(t))
	}
	if out.Count() > 0 {
		out.Status = Intersecting
	}
	return out
}

// CubicRectIntersection intersects a cubic Bézier curve with the outline of
// the rectangle spanned by r1 and r2.
func CubicRectIntersection(p0, p1, p2, p3, r1, r2 Point) Intersection {
	var acc accumulator
	for _, e := range NewRectFromPoints(r1, r2).Edges() {
		acc.add(CubicSegmentIntersection(p0, p1, p2, p3, e.P0, e.P1))
	}
	return acc.result(NoIntersection)
}

// CubicRectIntersects reports whether a cubic Bézier curve meets a rectangle's
// outline. Disjoint bounding boxes are rejected before falling back to
// [CubicRectIntersection].
func CubicRectIntersects(p0, p1, p2, p3, r1, r2 Point) bool {
	if boxesDisjoint(cubicBox(p0, p1, p2, p3), NewRectFromPoints(r1, r2)) {
		return false
	}
	return CubicRectIntersection(p0, p1, p2, p3, r1, r2).Intersects()
}

// CubicPolygonIntersection intersects a cubic Bézier curve with the outline
// of a polygon.
func CubicPolygonIntersection(p0, p1, p2, p3 Point, poly []Point) Intersection {
	var acc accumulator
	for e := range Polygon(poly).Edges() {
		acc.add(CubicSegmentIntersection(p0, p1, p2, p3, e.P0, e.P1))
	}
	return acc.result(NoIntersection)
}

// CubicPolygonIntersects reports whether a cubic Bézier curve meets a polygon's
// outline. Disjoint bounding boxes are rejected before falling back to
// [CubicPolygonIntersection].
func CubicPolygonIntersects(p0, p1, p2, p3 Point, poly []Point) bool {
	if boxesDisjoint(cubicBox(p0, p1, p2, p3), polygonBox(poly)) {
		return false
	}
	return CubicPolygonIntersection(p0, p1, p2, p3, poly).Intersects()
}

// QuadRectIntersection intersects a quadratic Bézier curve with the outline
// of the rectangle spanned by r1 and r2.
func QuadRectIntersection(p0, p1, p2, r1, r2 Point) Intersection {
	var acc accumulator
	for _, e := range NewRectFromPoints(r1, r2).Edges() {
		acc.add(QuadSegmentIntersection(p0, p1, p2, e.P0, e.P1))
	}
	return acc.result(NoIntersection)
}

// QuadRectIntersects reports whether a quadratic Bézier curve meets a
// rectangle's outline. Disjoint bounding boxes are rejected before falling back
// to [QuadRectIntersection].
func QuadRectIntersects(p0, p1, p2, r1, r2 Point) bool {
	if boxesDisjoint(quadBox(p0, p1, p2), NewRectFromPoints(r1, r2)) {
		return false
	}
	return QuadRectIntersection(p0, p1, p2, r1, r2).Intersects()
}

// QuadPolygonIntersection intersects a quadratic Bézier curve with the
// outline of a polygon.
func QuadPolygonIntersection(p0, p1, p2 Point, poly []Point) Intersection {
	var acc accumulator
	for e := range Polygon(poly).Edges() {
		acc.add(QuadSegmentIntersection(p0, p1, p2, e.P0, e.P1))
	}
	return acc.result(NoIntersection)
}

// QuadPolygonIntersects reports whether a quadratic Bézier curve meets a
// polygon's outline. Disjoint bounding boxes are rejected before falling back
// to [QuadPolygonIntersection].
func QuadPolygonIntersects(p0, p1, p2 Point, poly []Point) bool {
	if boxesDisjoint(quadBox(p0, p1, p2), polygonBox(poly)) {
		return false
	}
	return QuadPolygonIntersection(p0, p1, p2, poly).Intersects()
}
