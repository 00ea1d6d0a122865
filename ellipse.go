package intersect

import (
	"math"
)

// Ellipse is the image of the unit circle under an affine map.
type Ellipse struct {
	inner Affine
}

// NewEllipse creates an ellipse with a given center, radii, and rotation.
//
// The returned ellipse is the result of taking a circle, stretching it by
// radii along the x and y axes, then rotating it from the x axis by xRotation
// radians, before finally translating the center to center.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	rx, ry := radii.Splat()
	// The circle is symmetric about both axes, so negative radii describe the
	// same ellipse.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(rx), math.Abs(ry))),
	}
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// Radii returns the two radii of the ellipse.
//
// The first number is the horizontal radius and the second is the
// vertical radius, before rotation.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the ellipse's rotation, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// RadiiRotation returns the radii and the rotation of this ellipse.
//
// This is equivalent to, but more efficient than, using [Ellipse.Radii] and
// [Ellipse.Rotation].
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	// Map the point back to the unit circle.
	return Vec2(pt.Transform(e.inner.Invert())).Hypot2() < 1.0
}

// BoundingBox returns the tight axis-aligned bounding box of the ellipse.
func (e Ellipse) BoundingBox() Rect {
	// The radius vectors are the images of (1, 0) and (0, 1) under the linear
	// part, (a, b) and (c, d). See
	// https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
	aff := e.inner
	rangeX := math.Sqrt(aff.N0*aff.N0 + aff.N2*aff.N2)
	rangeY := math.Sqrt(aff.N1*aff.N1 + aff.N3*aff.N3)
	return Rect{
		X0: aff.N4 - rangeX,
		Y0: aff.N5 - rangeY,
		X1: aff.N4 + rangeX,
		Y1: aff.N5 + rangeY,
	}
}

// Conic returns the coefficients [a, b, c, d, e, f] of the implicit equation
// a·x² + b·xy + c·y² + d·x + e·y + f = 0 describing the ellipse.
func (e Ellipse) Conic() [6]float64 {
	radii, rot := e.RadiiRotation()
	c := e.Center()
	return ellipseConic(c.X, c.Y, radii.X, radii.Y, rot)
}

// ellipseConic computes the implicit conic of an ellipse centered on (cx, cy)
// with radii (rx, ry), rotated by angle.
//
// For an axis-aligned ellipse the xy coefficient is exactly zero.
func ellipseConic(cx, cy, rx, ry, angle float64) [6]float64 {
	rx2 := rx * rx
	ry2 := ry * ry
	var a, b, c float64
	if angle == 0 {
		a, b, c = ry2, 0, rx2
	} else {
		sin, cos := math.Sincos(angle)
		a = ry2*cos*cos + rx2*sin*sin
		b = 2 * (ry2 - rx2) * sin * cos
		c = ry2*sin*sin + rx2*cos*cos
	}
	return [6]float64{
		a,
		b,
		c,
		-2*a*cx - b*cy,
		-2*c*cy - b*cx,
		a*cx*cx + b*cx*cy + c*cy*cy - rx2*ry2,
	}
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}
