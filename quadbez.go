package intersect

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Coefficients returns the power-basis coefficients of the curve, such that
// B(t) = c[0] + c[1]·t + c[2]·t².
func (q QuadBez) Coefficients() [3]Vec2 {
	p0, p1, p2 := Vec2(q.P0), Vec2(q.P1), Vec2(q.P2)
	return [3]Vec2{
		p0,
		p1.Sub(p0).Mul(2),
		p0.Sub(p1.Mul(2)).Add(p2),
	}
}

// Polys returns the curve's coordinates as polynomials in t.
func (q QuadBez) Polys() (x, y Poly) {
	k := q.Coefficients()
	return NewPoly(k[0].X, k[1].X, k[2].X), NewPoly(k[0].Y, k[1].Y, k[2].Y)
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// BoundingBox returns the bounding box of the control polygon, which
// encloses the curve. It is not tight.
func (q QuadBez) BoundingBox() Rect {
	return NewRectFromPoints(q.P0, q.P2).UnionPoint(q.P1)
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}
