package intersect

import (
	"fmt"
	"math"
)

// Point is a position in 2D space. Points are compared with ==, which is
// exact component-wise equality.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// BoundingBox returns the zero-area rectangle at pt.
func (pt Point) BoundingBox() Rect {
	return Rect{pt.X, pt.Y, pt.X, pt.Y}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Min returns the component-wise minimum of two points.
func (pt Point) Min(o Point) Point {
	return Point{
		X: min(pt.X, o.X),
		Y: min(pt.Y, o.Y),
	}
}

// Max returns the component-wise maximum of two points.
func (pt Point) Max(o Point) Point {
	return Point{
		X: max(pt.X, o.X),
		Y: max(pt.Y, o.Y),
	}
}

// LessEq reports whether both coordinates of pt are less than or equal to
// those of o.
func (pt Point) LessEq(o Point) bool {
	return pt.X <= o.X && pt.Y <= o.Y
}

// GreaterEq reports whether both coordinates of pt are greater than or equal
// to those of o.
func (pt Point) GreaterEq(o Point) bool {
	return pt.X >= o.X && pt.Y >= o.Y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
