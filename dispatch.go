package intersect

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedPair is returned by [Intersect] and [Intersects] for pairs of
// primitives that have no intersection algorithm.
var ErrUnsupportedPair = errors.New("unsupported pair of primitives")

// Kind identifies the concrete type of a [Primitive].
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindRect
	KindPolygon
	KindCircle
	KindEllipse
	KindQuadBez
	KindCubicBez

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindQuadBez:
		return "quadratic Bézier"
	case KindCubicBez:
		return "cubic Bézier"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Primitive is a shape that can be intersected with [Intersect]. It is
// implemented by [Point], [Line], [Rect], [Polygon], [Circle], [Ellipse],
// [QuadBez] and [CubicBez], and can't be implemented outside of this package.
//
// A [Line] is treated as a segment, a [Rect] and a [Polygon] as their
// outlines.
type Primitive interface {
	Kind() Kind
	// BoundingBox returns a rectangle enclosing the shape. It need not be
	// tight.
	BoundingBox() Rect

	primitive()
}

func (Point) Kind() Kind    { return KindPoint }
func (Line) Kind() Kind     { return KindLine }
func (Rect) Kind() Kind     { return KindRect }
func (Polygon) Kind() Kind  { return KindPolygon }
func (Circle) Kind() Kind   { return KindCircle }
func (Ellipse) Kind() Kind  { return KindEllipse }
func (QuadBez) Kind() Kind  { return KindQuadBez }
func (CubicBez) Kind() Kind { return KindCubicBez }

func (Point) primitive()    {}
func (Line) primitive()     {}
func (Rect) primitive()     {}
func (Polygon) primitive()  {}
func (Circle) primitive()   {}
func (Ellipse) primitive()  {}
func (QuadBez) primitive()  {}
func (CubicBez) primitive() {}

type pairFunc func(a, b Primitive) Intersection

// pairs holds the algorithm for every supported pair of kinds, indexed by the
// smaller kind first. Nil entries are unsupported pairs.
var pairs = [kindCount][kindCount]pairFunc{
	KindPoint: {
		KindPoint: func(a, b Primitive) Intersection {
			return PointPointIntersection(a.(Point), b.(Point))
		},
		KindLine: func(a, b Primitive) Intersection {
			l := b.(Line)
			return PointSegmentIntersection(a.(Point), l.P0, l.P1)
		},
	},
	KindLine: {
		KindLine: func(a, b Primitive) Intersection {
			l1, l2 := a.(Line), b.(Line)
			return SegmentSegmentIntersection(l1.P0, l1.P1, l2.P0, l2.P1)
		},
		KindRect: func(a, b Primitive) Intersection {
			l := a.(Line)
			r1, r2 := rectCorners(b.(Rect))
			return SegmentRectIntersection(l.P0, l.P1, r1, r2)
		},
		KindPolygon: func(a, b Primitive) Intersection {
			l := a.(Line)
			return SegmentPolygonIntersection(l.P0, l.P1, b.(Polygon))
		},
		KindCircle: func(a, b Primitive) Intersection {
			l, c := a.(Line), b.(Circle)
			return CircleSegmentIntersection(c.Center, c.Radius, l.P0, l.P1)
		},
		KindEllipse: func(a, b Primitive) Intersection {
			l := a.(Line)
			c, rx, ry, rot := ellipseParams(b.(Ellipse))
			return EllipseSegmentIntersection(c, rx, ry, rot, l.P0, l.P1)
		},
		KindQuadBez: func(a, b Primitive) Intersection {
			l, q := a.(Line), b.(QuadBez)
			return QuadSegmentIntersection(q.P0, q.P1, q.P2, l.P0, l.P1)
		},
		KindCubicBez: func(a, b Primitive) Intersection {
			l, c := a.(Line), b.(CubicBez)
			return CubicSegmentIntersection(c.P0, c.P1, c.P2, c.P3, l.P0, l.P1)
		},
	},
	KindRect: {
		KindRect: func(a, b Primitive) Intersection {
			a1, a2 := rectCorners(a.(Rect))
			b1, b2 := rectCorners(b.(Rect))
			return RectRectIntersection(a1, a2, b1, b2)
		},
		KindPolygon: func(a, b Primitive) Intersection {
			r1, r2 := rectCorners(a.(Rect))
			return RectPolygonIntersection(r1, r2, b.(Polygon))
		},
		KindCircle: func(a, b Primitive) Intersection {
			r1, r2 := rectCorners(a.(Rect))
			c := b.(Circle)
			return CircleRectIntersection(c.Center, c.Radius, r1, r2)
		},
		KindEllipse: func(a, b Primitive) Intersection {
			r1, r2 := rectCorners(a.(Rect))
			c, rx, ry, rot := ellipseParams(b.(Ellipse))
			return EllipseRectIntersection(c, rx, ry, rot, r1, r2)
		},
		KindQuadBez: func(a, b Primitive) Intersection {
			r1, r2 := rectCorners(a.(Rect))
			q := b.(QuadBez)
			return QuadRectIntersection(q.P0, q.P1, q.P2, r1, r2)
		},
		KindCubicBez: func(a, b Primitive) Intersection {
			r1, r2 := rectCorners(a.(Rect))
			c := b.(CubicBez)
			return CubicRectIntersection(c.P0, c.P1, c.P2, c.P3, r1, r2)
		},
	},
	KindPolygon: {
		KindPolygon: func(a, b Primitive) Intersection {
			return PolygonPolygonIntersection(a.(Polygon), b.(Polygon))
		},
		KindCircle: func(a, b Primitive) Intersection {
			c := b.(Circle)
			return CirclePolygonIntersection(c.Center, c.Radius, a.(Polygon))
		},
		KindEllipse: func(a, b Primitive) Intersection {
			c, rx, ry, rot := ellipseParams(b.(Ellipse))
			return EllipsePolygonIntersection(c, rx, ry, rot, a.(Polygon))
		},
		KindQuadBez: func(a, b Primitive) Intersection {
			q := b.(QuadBez)
			return QuadPolygonIntersection(q.P0, q.P1, q.P2, a.(Polygon))
		},
		KindCubicBez: func(a, b Primitive) Intersection {
			c := b.(CubicBez)
			return CubicPolygonIntersection(c.P0, c.P1, c.P2, c.P3, a.(Polygon))
		},
	},
	KindCircle: {
		KindCircle: func(a, b Primitive) Intersection {
			c1, c2 := a.(Circle), b.(Circle)
			return CircleCircleIntersection(c1.Center, c1.Radius, c2.Center, c2.Radius)
		},
		KindEllipse: func(a, b Primitive) Intersection {
			c1 := a.(Circle)
			c2, rx, ry, rot := ellipseParams(b.(Ellipse))
			return CircleEllipseIntersection(c1.Center, c1.Radius, c2, rx, ry, rot)
		},
		KindQuadBez: func(a, b Primitive) Intersection {
			c, q := a.(Circle), b.(QuadBez)
			return QuadCircleIntersection(q.P0, q.P1, q.P2, c.Center, c.Radius)
		},
		KindCubicBez: func(a, b Primitive) Intersection {
			c, cb := a.(Circle), b.(CubicBez)
			return CubicCircleIntersection(cb.P0, cb.P1, cb.P2, cb.P3, c.Center, c.Radius)
		},
	},
	KindEllipse: {
		KindEllipse: func(a, b Primitive) Intersection {
			c1, rx1, ry1, rot1 := ellipseParams(a.(Ellipse))
			c2, rx2, ry2, rot2 := ellipseParams(b.(Ellipse))
			return EllipseEllipseIntersection(c1, rx1, ry1, rot1, c2, rx2, ry2, rot2)
		},
		KindQuadBez: func(a, b Primitive) Intersection {
			c, rx, ry, rot := ellipseParams(a.(Ellipse))
			q := b.(QuadBez)
			return QuadEllipseIntersection(q.P0, q.P1, q.P2, c, rx, ry, rot)
		},
		KindCubicBez: func(a, b Primitive) Intersection {
			c, rx, ry, rot := ellipseParams(a.(Ellipse))
			cb := b.(CubicBez)
			return CubicEllipseIntersection(cb.P0, cb.P1, cb.P2, cb.P3, c, rx, ry, rot)
		},
	},
	KindQuadBez: {
		KindQuadBez: func(a, b Primitive) Intersection {
			q1, q2 := a.(QuadBez), b.(QuadBez)
			return QuadQuadIntersection(q1.P0, q1.P1, q1.P2, q2.P0, q2.P1, q2.P2)
		},
		KindCubicBez: func(a, b Primitive) Intersection {
			q, c := a.(QuadBez), b.(CubicBez)
			return QuadCubicIntersection(q.P0, q.P1, q.P2, c.P0, c.P1, c.P2, c.P3)
		},
	},
	KindCubicBez: {
		KindCubicBez: func(a, b Primitive) Intersection {
			c1, c2 := a.(CubicBez), b.(CubicBez)
			return CubicCubicIntersection(c1.P0, c1.P1, c1.P2, c1.P3, c2.P0, c2.P1, c2.P2, c2.P3)
		},
	},
}

func rectCorners(r Rect) (Point, Point) {
	return Pt(r.X0, r.Y0), Pt(r.X1, r.Y1)
}

func ellipseParams(e Ellipse) (center Point, rx, ry, rotation float64) {
	radii, rot := e.RadiiRotation()
	return e.Center(), radii.X, radii.Y, rot
}

func lookup(a, b Primitive) (pairFunc, Primitive, Primitive, error) {
	if a == nil || b == nil {
		return nil, nil, nil, errors.AssertionFailedf("nil primitive")
	}
	ka, kb := a.Kind(), b.Kind()
	if ka >= kindCount || kb >= kindCount {
		return nil, nil, nil, errors.AssertionFailedf("invalid primitive kinds %d and %d", ka, kb)
	}
	if ka > kb {
		a, b = b, a
		ka, kb = kb, ka
	}
	fn := pairs[ka][kb]
	if fn == nil {
		return nil, nil, nil, errors.Wrapf(ErrUnsupportedPair, "%s and %s", ka, kb)
	}
	return fn, a, b, nil
}

// Intersect intersects two primitives with the algorithm for their pair of
// kinds. The order of the arguments doesn't matter; the primitive of the
// smaller [Kind] is always passed first, which may affect the order of the
// points and, for pairs reporting [Inside] or [Outside], which shape the
// status refers to.
//
// Pairs without an algorithm return an error wrapping [ErrUnsupportedPair].
func Intersect(a, b Primitive) (Intersection, error) {
	fn, a, b, err := lookup(a, b)
	if err != nil {
		return Intersection{}, err
	}
	return fn(a, b), nil
}

// Intersects reports whether the outlines of two primitives share a point.
// Primitives with disjoint bounding boxes are rejected without solving.
func Intersects(a, b Primitive) (bool, error) {
	fn, a, b, err := lookup(a, b)
	if err != nil {
		return false, err
	}
	if boxesDisjoint(a.BoundingBox(), b.BoundingBox()) {
		return false, nil
	}
	return fn(a, b).Intersects(), nil
}
