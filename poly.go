package intersect

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	// RootTolerance is the relative tolerance below which the value of a
	// polynomial counts as zero when isolating roots, relative to the sum of
	// the magnitudes of its terms.
	RootTolerance = 1e-12

	// leading coefficients smaller than this, relative to the largest
	// coefficient, are dropped before solving.
	simplifyTolerance = 1e-12

	// width of the bracket at which root refinement stops.
	bracketEpsilon = 1e-14
)

// Poly is a polynomial with real coefficients, stored in ascending order of
// degree: p(t) = p[0] + p[1]·t + p[2]·t² + …
//
// Polys are treated as immutable. All methods return new values.
type Poly []float64

// NewPoly returns the polynomial with the given coefficients, in ascending
// order of degree.
func NewPoly(coeffs ...float64) Poly {
	return Poly(slices.Clone(coeffs))
}

// Degree returns the degree of the polynomial, ignoring leading coefficients
// that are exactly zero. The zero polynomial has degree -1.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether all coefficients are exactly zero.
func (p Poly) IsZero() bool {
	return p.Degree() == -1
}

// Eval evaluates the polynomial at t, using Horner's method.
func (p Poly) Eval(t float64) float64 {
	var v float64
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + p[i]
	}
	return v
}

// evalAbs evaluates Σ|p[i]|·|t|^i, the scale against which the value of p at t
// is compared.
func (p Poly) evalAbs(t float64) float64 {
	t = math.Abs(t)
	var v float64
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + math.Abs(p[i])
	}
	return v
}

// Derivative returns the first derivative of the polynomial.
func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out
}

// Normalize returns the polynomial divided by its leading coefficient, so that
// the leading coefficient is 1. The zero polynomial is returned unchanged.
func (p Poly) Normalize() Poly {
	n := p.Degree()
	if n < 0 {
		return Poly{}
	}
	out := make(Poly, n+1)
	lead := p[n]
	for i := range out {
		out[i] = p[i] / lead
	}
	out[n] = 1
	return out
}

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	out := make(Poly, max(len(p), len(o)))
	copy(out, p)
	for i, c := range o {
		out[i] += c
	}
	return out
}

// Sub returns p − o.
func (p Poly) Sub(o Poly) Poly {
	out := make(Poly, max(len(p), len(o)))
	copy(out, p)
	for i, c := range o {
		out[i] -= c
	}
	return out
}

// Mul returns p · o.
func (p Poly) Mul(o Poly) Poly {
	if len(p) == 0 || len(o) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(o)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range o {
			out[i+j] += a * b
		}
	}
	return out
}

// Scale returns p · f.
func (p Poly) Scale(f float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = c * f
	}
	return out
}

// AddScalar returns p + f.
func (p Poly) AddScalar(f float64) Poly {
	out := make(Poly, max(len(p), 1))
	copy(out, p)
	out[0] += f
	return out
}

func (p Poly) maxAbs() float64 {
	var m float64
	for _, c := range p {
		m = max(m, math.Abs(c))
	}
	return m
}

// simplify drops leading coefficients that are negligible compared to the
// largest coefficient.
func (p Poly) simplify() Poly {
	m := p.maxAbs()
	n := len(p)
	for n > 0 && math.Abs(p[n-1]) <= simplifyTolerance*m {
		n--
	}
	return p[:n:n]
}

// Roots returns all real roots of the polynomial, in ascending order.
//
// Polynomials of degree three or less are solved in closed form. Higher
// degrees are solved via the eigenvalues of the companion matrix, whose
// nearly real eigenvalues are refined with Newton's method. The zero
// polynomial and constants report no roots.
func (p Poly) Roots() []float64 {
	p = p.simplify()
	switch len(p) - 1 {
	case -1, 0:
		return nil
	case 1:
		return []float64{-p[0] / p[1]}
	case 2:
		roots, n := SolveQuadratic(p[0], p[1], p[2])
		return slices.Clone(roots[:n])
	case 3:
		roots, n := SolveCubic(p[0], p[1], p[2], p[3])
		out := slices.Clone(roots[:n])
		slices.Sort(out)
		return out
	}

	vals, ok := p.eigenvalues()
	if !ok {
		return nil
	}
	var out []float64
	for _, v := range vals {
		re, im := real(v), imag(v)
		if math.Abs(im) > 1e-6*max(1, math.Abs(re)) {
			continue
		}
		x := p.polish(re)
		if math.Abs(p.Eval(x)) > 1e-8*p.evalAbs(x) {
			continue
		}
		out = append(out, x)
	}
	slices.Sort(out)
	// Multiple roots show up as clusters of nearly identical eigenvalues.
	return slices.CompactFunc(out, func(a, b float64) bool {
		return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a))
	})
}

// TouchingRoots returns the critical points of the polynomial at which its
// absolute value is at most tol, in ascending order.
//
// A double root that rounding lifts off the real axis has a slightly
// negative discriminant and is missed by [Poly.Roots], but the critical point
// it collapsed into is still found.
func (p Poly) TouchingRoots(tol float64) []float64 {
	var out []float64
	for _, c := range p.Derivative().Roots() {
		if math.Abs(p.Eval(c)) <= tol {
			out = append(out, c)
		}
	}
	return out
}

// RealOrComplexRoots returns the real parts of all roots of the polynomial,
// real or complex, in ascending order.
func (p Poly) RealOrComplexRoots() []float64 {
	p = p.simplify()
	switch len(p) - 1 {
	case -1, 0:
		return nil
	case 1:
		return []float64{-p[0] / p[1]}
	}
	vals, ok := p.eigenvalues()
	if !ok {
		return nil
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = real(v)
	}
	slices.Sort(out)
	return out
}

// eigenvalues computes the eigenvalues of the companion matrix of p, which
// are the roots of p. p must be of degree two or higher with a non-zero
// leading coefficient.
func (p Poly) eigenvalues() ([]complex128, bool) {
	n := len(p) - 1
	lead := p[n]
	c := mat.NewDense(n, n, nil)
	for i := range n {
		if i > 0 {
			c.Set(i, i-1, 1)
		}
		c.Set(i, n-1, -p[i]/lead)
	}
	var eig mat.Eigen
	if !eig.Factorize(c, mat.EigenNone) {
		return nil, false
	}
	return eig.Values(nil), true
}

// polish refines an approximate root with Newton-Raphson iteration, stopping
// as soon as an iteration fails to improve the residual.
func (p Poly) polish(x float64) float64 {
	d := p.Derivative()
	f := p.Eval(x)
	for range 8 {
		if f == 0 {
			break
		}
		df := d.Eval(x)
		if df == 0 {
			break
		}
		newX := x - f/df
		newF := p.Eval(newX)
		if math.Abs(newF) >= math.Abs(f) {
			break
		}
		x, f = newX, newF
	}
	return x
}

// RootsInInterval returns the real roots of the polynomial in [lo, hi], in
// ascending order.
//
// Roots are isolated by recursively finding the roots of the derivative,
// which split the interval into monotonic pieces; each piece containing a
// sign change is then refined with [SolveITP]. Points where the value is
// within [RootTolerance] of zero, such as the touching point of a double
// root, are reported as roots as well.
func (p Poly) RootsInInterval(lo, hi float64) []float64 {
	p = p.simplify()
	switch len(p) - 1 {
	case -1, 0:
		return nil
	case 1:
		r := -p[0] / p[1]
		if r >= lo && r <= hi {
			return []float64{r}
		}
		return nil
	}

	var roots []float64
	add := func(r float64) {
		if n := len(roots); n > 0 && r-roots[n-1] <= bracketEpsilon {
			return
		}
		roots = append(roots, r)
	}
	nearZero := func(t, v float64) bool {
		return math.Abs(v) <= RootTolerance*p.evalAbs(t)
	}

	a := lo
	fa := p.Eval(a)
	for _, b := range append(p.Derivative().RootsInInterval(lo, hi), hi) {
		fb := p.Eval(b)
		if nearZero(a, fa) {
			add(a)
		} else if !nearZero(b, fb) && (fa < 0) != (fb < 0) {
			add(p.bracket(a, b, fa, fb))
		}
		a, fa = b, fb
	}
	if nearZero(a, fa) {
		add(a)
	}
	return roots
}

// bracket finds the root of p in [a, b], given that p(a) and p(b) have
// different signs.
func (p Poly) bracket(a, b, fa, fb float64) float64 {
	f := p.Eval
	if fa > 0 {
		f = func(t float64) float64 { return -p.Eval(t) }
		fa, fb = -fa, -fb
	}
	return SolveITP(f, a, b, bracketEpsilon, 1, 0.2/(b-a), fa, fb)
}

func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, c := range p {
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%g", c)
		case 1:
			fmt.Fprintf(&sb, "%g·t", c)
		default:
			fmt.Fprintf(&sb, "%g·t^%d", c, i)
		}
	}
	return sb.String()
}
