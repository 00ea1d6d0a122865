package intersect

import (
	"cmp"
	"math"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...gocmp.Option) {
	t.Helper()
	if d := gocmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// approx compares floats, and thus points, with an absolute tolerance.
func approx(epsilon float64) gocmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

// unordered ignores the order of intersection points.
var unordered = cmpopts.SortSlices(func(a, b Point) bool {
	return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y)) < 0
})

// samePoints reports whether two point sets are equal within epsilon,
// ignoring order.
func samePoints(a, b []Point, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, p := range a {
		for i, q := range b {
			if !used[i] && p.Distance(q) <= epsilon {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}


func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
