package intersect

import (
	"math"
)

// Bezout returns the resultant of two conics with respect to x, a polynomial
// of degree at most four in y whose real roots are the y coordinates of the
// conics' common points.
//
// Each conic is given by the coefficients [a, b, c, d, e, f] of
// a·x² + b·xy + c·y² + d·x + e·y + f = 0. Viewing both conics as quadratics
// in x, the result equals the determinant of their 4×4 Sylvester matrix.
// Coefficients are in ascending order of degree.
func Bezout(e1, e2 [6]float64) Poly {
	minor := func(i, j int) float64 {
		return e1[i]*e2[j] - e2[i]*e1[j]
	}
	ab := minor(0, 1)
	ac := minor(0, 2)
	ad := minor(0, 3)
	ae := minor(0, 4)
	af := minor(0, 5)
	bc := minor(1, 2)
	be := minor(1, 4)
	bf := minor(1, 5)
	cd := minor(2, 3)
	de := minor(3, 4)
	df := minor(3, 5)
	bfpde := bf + de
	bemcd := be - cd

	// (ac·y² + ae·y + af)² − (ab·y + ad)·(bc·y³ + bemcd·y² + bfpde·y + df)
	return Poly{
		af*af - ad*df,
		2*ae*af - ab*df - ad*bfpde,
		ae*ae + 2*ac*af - ab*bfpde - ad*bemcd,
		2*ac*ae - ab*bemcd - ad*bc,
		ac*ac - ab*bc,
	}
}

// curveResultant eliminates t from the system
//
//	x1(s) = x2(t)
//	y1(s) = y2(t)
//
// returning a polynomial in s whose roots are the parameters on the first
// curve at which it meets the second. x2 and y2 are the power-basis
// coefficients of the second curve, of degree n ≤ 3. The resultant is the
// determinant of the n×n Bézout matrix of the two equations, expanded with
// [Poly] arithmetic; for two cubics it has degree nine.
func curveResultant(x1, y1 Poly, x2, y2 [4]float64, n int) Poly {
	// f(t) = x2(t) − x1(s), g(t) = y2(t) − y1(s). Only the constant terms
	// depend on s.
	f0 := Poly{x2[0]}.Sub(x1)
	g0 := Poly{y2[0]}.Sub(y1)

	// [k0] = f_k·g_0 − f_0·g_k
	bracket0 := func(k int) Poly {
		return g0.Scale(x2[k]).Sub(f0.Scale(y2[k]))
	}
	// [kl] = f_k·g_l − f_l·g_k for k, l > 0
	bracket := func(k, l int) float64 {
		return x2[k]*y2[l] - x2[l]*y2[k]
	}

	switch n {
	case 0:
		// The second curve is a point; it lies on the first curve where both
		// differences vanish.
		return f0.Mul(f0).Add(g0.Mul(g0))
	case 1:
		return bracket0(1)
	case 2:
		return bracket0(1).Scale(bracket(2, 1)).Sub(bracket0(2).Mul(bracket0(2)))
	case 3:
		b00 := bracket0(1)
		b01 := bracket0(2)
		b02 := bracket0(3)
		b11 := b02.AddScalar(bracket(2, 1))
		b12 := bracket(3, 1)
		b22 := bracket(3, 2)

		t1 := b00.Mul(b11.Scale(b22).AddScalar(-b12 * b12))
		t2 := b01.Mul(b01.Scale(b22).Sub(b02.Scale(b12)))
		t3 := b02.Mul(b01.Scale(b12).Sub(b11.Mul(b02)))
		return t1.Sub(t2).Add(t3)
	default:
		panic("unsupported curve degree")
	}
}

// curveDegree returns the effective degree of a curve given by power-basis
// coefficients, ignoring leading terms that are negligible compared to the
// curve's extent.
func curveDegree(x, y [4]float64) int {
	var scale float64
	for i := range x {
		scale = max(scale, math.Abs(x[i]), math.Abs(y[i]))
	}
	n := 3
	for n > 0 && math.Abs(x[n]) <= 1e-12*scale && math.Abs(y[n]) <= 1e-12*scale {
		n--
	}
	return n
}
