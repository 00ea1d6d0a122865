package intersect

import (
	"fmt"
	"math"
	"testing"
)

var (
	// An S-shaped cubic, y = 6t(1−t)(1−2t), with x = 3t.
	sCurve = CubicBez{Pt(0, 0), Pt(1, 2), Pt(2, -2), Pt(3, 0)}
	// A parabolic arc peaking at (1, 1), y = 4t(1−t), with x = 2t.
	hump = QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
)

func TestCubicSegment(t *testing.T) {
	c := sCurve
	tests := []struct {
		name   string
		a1, a2 Point
		status Status
		points []Point
	}{
		{"through middle", Pt(0, -1), Pt(3, 1), Intersecting, []Point{Pt(1.5, 0)}},
		{"horizontal", Pt(0, 0.5), Pt(3, 0.5), Intersecting, []Point{
			Pt(0.38665920154716127, 0.5),
			Pt(0.9076037345479525, 0.5),
		}},
		{"short", Pt(0, 0.5), Pt(0.5, 0.5), Intersecting, []Point{Pt(0.38665920154716127, 0.5)}},
		{"above", Pt(0, 1), Pt(3, 1), NoIntersection, nil},
		{"vertical", Pt(1.5, -5), Pt(1.5, 5), Intersecting, []Point{Pt(1.5, 0)}},
		{"degenerate", Pt(1.5, 0), Pt(1.5, 0), NoIntersection, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CubicSegmentIntersection(c.P0, c.P1, c.P2, c.P3, tt.a1, tt.a2)
			diff(t, NewIntersection(tt.status, tt.points...), got, approx(1e-9), unordered)
			if fast := CubicSegmentIntersects(c.P0, c.P1, c.P2, c.P3, tt.a1, tt.a2); fast != got.Intersects() {
				t.Errorf("CubicSegmentIntersects = %t, but status is %s", fast, got.Status)
			}
		})
	}
}

func TestCubicSegmentRoundTrip(t *testing.T) {
	// A point on the curve, intersected with a line through it, is found
	// again.
	c := sCurve
	for _, tc := range []float64{0.1, 0.25, 0.5, 0.8} {
		t.Run(fmt.Sprint(tc), func(t *testing.T) {
			pt := c.Eval(tc)
			got := CubicSegmentIntersection(c.P0, c.P1, c.P2, c.P3, pt.Translate(Vec(-1, -10)), pt.Translate(Vec(1, 10)))
			if got.Status != Intersecting {
				t.Fatalf("got %s, want %s", got.Status, Intersecting)
			}
			best := math.Inf(1)
			for _, p := range got.Points {
				best = min(best, p.Distance(pt))
			}
			if best > 1e-9 {
				t.Errorf("closest point is %g away from %s", best, pt)
			}
		})
	}
}

func TestCubicSegmentCoincident(t *testing.T) {
	// A cubic that is a straight line.
	p0, p1, p2, p3 := Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)

	got := CubicSegmentIntersection(p0, p1, p2, p3, Pt(1, 1), Pt(5, 5))
	diff(t, NewIntersection(Coincident), got)

	got = CubicSegmentIntersection(p0, p1, p2, p3, Pt(4, 4), Pt(5, 5))
	diff(t, NewIntersection(NoIntersection), got)

	got = CubicSegmentIntersection(p0, p1, p2, p3, Pt(0, 1), Pt(3, 4))
	diff(t, NewIntersection(NoIntersection), got)
}

func TestQuadSegment(t *testing.T) {
	q := hump
	d := math.Sqrt2 / 2
	tests := []struct {
		name   string
		a1, a2 Point
		status Status
		points []Point
	}{
		{"two crossings", Pt(0, 0.5), Pt(2, 0.5), Intersecting, []Point{Pt(1-d, 0.5), Pt(1+d, 0.5)}},
		{"one crossing", Pt(0, 0.5), Pt(0.5, 0.5), Intersecting, []Point{Pt(1-d, 0.5)}},
		{"vertical", Pt(1, -1), Pt(1, 3), Intersecting, []Point{Pt(1, 1)}},
		{"tangent at peak", Pt(0, 1), Pt(2, 1), Intersecting, []Point{Pt(1, 1)}},
		{"above", Pt(0, 2), Pt(2, 2), NoIntersection, nil},
		{"below chord", Pt(0.5, -1), Pt(1.5, -1), NoIntersection, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuadSegmentIntersection(q.P0, q.P1, q.P2, tt.a1, tt.a2)
			diff(t, NewIntersection(tt.status, tt.points...), got, approx(1e-9), unordered)
			if fast := QuadSegmentIntersects(q.P0, q.P1, q.P2, tt.a1, tt.a2); fast != got.Intersects() {
				t.Errorf("QuadSegmentIntersects = %t, but status is %s", fast, got.Status)
			}
		})
	}
}

func TestCubicCubic(t *testing.T) {
	c := sCurve

	t.Run("rotated copy", func(t *testing.T) {
		// The curve rotated by 90° about its midpoint.
		r := CubicBez{Pt(1.5, -1.5), Pt(-0.5, -0.5), Pt(3.5, 0.5), Pt(1.5, 1.5)}
		got := CubicCubicIntersection(c.P0, c.P1, c.P2, c.P3, r.P0, r.P1, r.P2, r.P3)
		diff(t, NewIntersection(Intersecting, Pt(1.5, 0)), got, approx(1e-6))
	})

	t.Run("two crossings", func(t *testing.T) {
		o := CubicBez{Pt(0, 0.5), Pt(1, -2), Pt(2, 2), Pt(3, 0.5)}
		got := CubicCubicIntersection(c.P0, c.P1, c.P2, c.P3, o.P0, o.P1, o.P2, o.P3)
		want := []Point{
			Pt(0.12524808327590822, 0.21999523604471366),
			Pt(1.4370590499331626, 0.0628301302662766),
		}
		diff(t, NewIntersection(Intersecting, want...), got, approx(1e-6), unordered)
	})

	t.Run("straight cubic", func(t *testing.T) {
		// A cubic tracing a vertical line, evenly parameterized.
		v := CubicBez{Pt(1.5, -3), Pt(1.5, -1), Pt(1.5, 1), Pt(1.5, 3)}
		got := CubicCubicIntersection(c.P0, c.P1, c.P2, c.P3, v.P0, v.P1, v.P2, v.P3)
		diff(t, NewIntersection(Intersecting, Pt(1.5, 0)), got, approx(1e-6))
	})

	t.Run("identical", func(t *testing.T) {
		got := CubicCubicIntersection(c.P0, c.P1, c.P2, c.P3, c.P0, c.P1, c.P2, c.P3)
		diff(t, NewIntersection(Coincident), got)
	})

	t.Run("far apart", func(t *testing.T) {
		o := CubicBez{Pt(10, 10), Pt(11, 12), Pt(12, 8), Pt(13, 10)}
		got := CubicCubicIntersection(c.P0, c.P1, c.P2, c.P3, o.P0, o.P1, o.P2, o.P3)
		diff(t, NewIntersection(NoIntersection), got)
		if CubicCubicIntersects(c.P0, c.P1, c.P2, c.P3, o.P0, o.P1, o.P2, o.P3) {
			t.Error("distant curves shouldn't intersect")
		}
	})
}

func TestQuadQuad(t *testing.T) {
	q := hump
	d := math.Sqrt2 / 2

	t.Run("crossing", func(t *testing.T) {
		// y = (1−2t)², a valley touching (1, 0).
		v := QuadBez{Pt(0, 1), Pt(1, -1), Pt(2, 1)}
		got := QuadQuadIntersection(q.P0, q.P1, q.P2, v.P0, v.P1, v.P2)
		diff(t, NewIntersection(Intersecting, Pt(1-d, 0.5), Pt(1+d, 0.5)), got, approx(1e-6), unordered)
		if !QuadQuadIntersects(q.P0, q.P1, q.P2, v.P0, v.P1, v.P2) {
			t.Error("crossing curves should intersect")
		}
	})

	t.Run("overlapping pieces", func(t *testing.T) {
		left, _ := q.Subdivide()
		got := QuadQuadIntersection(q.P0, q.P1, q.P2, left.P0, left.P1, left.P2)
		diff(t, NewIntersection(Coincident), got)
	})

	t.Run("disjoint pieces", func(t *testing.T) {
		// The pieces of the curve for t in [0, 0.25] and [0.75, 1].
		a := QuadBez{Pt(0, 0), Pt(0.25, 0.5), Pt(0.5, 0.75)}
		b := QuadBez{Pt(1.5, 0.75), Pt(1.75, 0.5), Pt(2, 0)}
		got := QuadQuadIntersection(a.P0, a.P1, a.P2, b.P0, b.P1, b.P2)
		diff(t, NewIntersection(NoIntersection), got)
	})
}

func TestQuadQuadCrossingAtPeak(t *testing.T) {
	// A vertical line crossing an arch at its peak, where the arch's y
	// coordinate has a double root.
	for _, h := range []float64{1, 0.7, 1.3, 0.1, 3.7} {
		l := QuadBez{Pt(h, -h), Pt(h, 0), Pt(h, 3*h)}
		arch := QuadBez{Pt(0, 0), Pt(h, 2*h), Pt(2*h, 0)}
		want := NewIntersection(Intersecting, Pt(h, h))

		got := QuadQuadIntersection(l.P0, l.P1, l.P2, arch.P0, arch.P1, arch.P2)
		diff(t, want, got, approx(1e-6))
		got = QuadQuadIntersection(arch.P0, arch.P1, arch.P2, l.P0, l.P1, l.P2)
		diff(t, want, got, approx(1e-6))
		got = QuadSegmentIntersection(arch.P0, arch.P1, arch.P2, l.P0, l.P2)
		diff(t, want, got, approx(1e-6))
	}
}

func TestCubicCubicCrossingAtPeak(t *testing.T) {
	arch := CubicBez{Pt(0, 0), Pt(0.5, 2), Pt(1.5, 2), Pt(2, 0)}
	s := CubicBez{Pt(0, -0.5), Pt(1.5, 0.5), Pt(0.5, 2.5), Pt(2, 3.5)}
	want := NewIntersection(Intersecting, Pt(1, 1.5))

	got := CubicCubicIntersection(s.P0, s.P1, s.P2, s.P3, arch.P0, arch.P1, arch.P2, arch.P3)
	diff(t, want, got, approx(1e-6))
	got = CubicCubicIntersection(arch.P0, arch.P1, arch.P2, arch.P3, s.P0, s.P1, s.P2, s.P3)
	diff(t, want, got, approx(1e-6))
}

func TestQuadCubic(t *testing.T) {
	c := sCurve
	// A valley, y = 1 − 8t + 8t², with x = 3t.
	v := QuadBez{Pt(0, 1), Pt(1.5, -3), Pt(3, 1)}
	got := QuadCubicIntersection(v.P0, v.P1, v.P2, c.P0, c.P1, c.P2, c.P3)
	want := []Point{
		Pt(0.2521042623492697, 0.3842166862638758),
		Pt(2.2106180087451612, -0.5511307072418324),
	}
	diff(t, NewIntersection(Intersecting, want...), got, approx(1e-6), unordered)

	// A quadratic raised to a cubic traces the same curve.
	raised := v.Raise()
	got = QuadCubicIntersection(v.P0, v.P1, v.P2, raised.P0, raised.P1, raised.P2, raised.P3)
	diff(t, NewIntersection(Coincident), got)
}

func TestCurveCurvePoint(t *testing.T) {
	// A curve collapsed to a single point.
	c := sCurve
	pt := c.Eval(0.25)
	got := CubicCubicIntersection(pt, pt, pt, pt, c.P0, c.P1, c.P2, c.P3)
	diff(t, NewIntersection(Intersecting, pt), got)

	off := Pt(1, 1)
	got = CubicCubicIntersection(off, off, off, off, c.P0, c.P1, c.P2, c.P3)
	diff(t, NewIntersection(NoIntersection), got)
}

func TestCurveEllipse(t *testing.T) {
	c := sCurve
	q := hump

	t.Run("cubic ellipse", func(t *testing.T) {
		got := CubicEllipseIntersection(c.P0, c.P1, c.P2, c.P3, Pt(1.5, 0), 2, 0.5, 0)
		want := []Point{
			Pt(0.2596358720176197, 0.3922289533880776),
			Pt(0.942966639520977, 0.4802156960232459),
			Pt(2.0570333604790223, -0.48021569602324565),
			Pt(2.7403641279823803, -0.3922289533880777),
		}
		diff(t, NewIntersection(Intersecting, want...), got, approx(1e-7))
	})

	t.Run("cubic circle", func(t *testing.T) {
		got := CubicCircleIntersection(c.P0, c.P1, c.P2, c.P3, Pt(1.5, 0), 1)
		want := []Point{
			Pt(0.6816850687702807, 0.5747701047605901),
			Pt(2.318314931229719, -0.57477010476059),
		}
		diff(t, NewIntersection(Intersecting, want...), got, approx(1e-7))
	})

	t.Run("quad circle", func(t *testing.T) {
		got := QuadCircleIntersection(q.P0, q.P1, q.P2, Pt(1, 0), 0.9)
		want := []Point{
			Pt(0.1368957338314692, 0.2550510257216819),
			Pt(0.4949742326161145, 0.7449489742783176),
			Pt(1.5050257673838852, 0.744948974278318),
			Pt(1.863104266168531, 0.2550510257216814),
		}
		diff(t, NewIntersection(Intersecting, want...), got, approx(1e-7))
	})

	t.Run("rotated circle", func(t *testing.T) {
		want := QuadCircleIntersection(q.P0, q.P1, q.P2, Pt(1, 0), 0.9)
		got := QuadEllipseIntersection(q.P0, q.P1, q.P2, Pt(1, 0), 0.9, 0.9, 0.7)
		diff(t, want, got, approx(1e-9))
	})

	t.Run("inside", func(t *testing.T) {
		got := QuadEllipseIntersection(q.P0, q.P1, q.P2, Pt(1, 0), 5, 3, 0.2)
		diff(t, NewIntersection(NoIntersection), got)
	})

	t.Run("degenerate", func(t *testing.T) {
		got := CubicEllipseIntersection(c.P0, c.P1, c.P2, c.P3, Pt(1.5, 0), 0, 1, 0)
		diff(t, NewIntersection(NoIntersection), got)
	})
}

func TestCurveRect(t *testing.T) {
	c := sCurve
	q := hump

	got := CubicRectIntersection(c.P0, c.P1, c.P2, c.P3, Pt(0.5, -1), Pt(2.5, 1))
	diff(t, NewIntersection(Intersecting, Pt(0.5, 5.0/9), Pt(2.5, -5.0/9)), got, approx(1e-9), unordered)

	got = QuadRectIntersection(q.P0, q.P1, q.P2, Pt(0.5, 0.5), Pt(1.5, 2))
	diff(t, NewIntersection(Intersecting, Pt(0.5, 0.75), Pt(1.5, 0.75)), got, approx(1e-9), unordered)

	got = QuadRectIntersection(q.P0, q.P1, q.P2, Pt(-1, -1), Pt(3, 3))
	diff(t, NewIntersection(NoIntersection), got)

	if CubicRectIntersects(c.P0, c.P1, c.P2, c.P3, Pt(10, 10), Pt(11, 11)) {
		t.Error("distant rectangle shouldn't intersect")
	}
	if !QuadRectIntersects(q.P0, q.P1, q.P2, Pt(0.5, 0.5), Pt(1.5, 2)) {
		t.Error("crossing rectangle should intersect")
	}
}

func TestCurvePolygon(t *testing.T) {
	c := sCurve
	q := hump
	d := math.Sqrt2 / 2

	tri := []Point{Pt(0, 0.5), Pt(2, 0.5), Pt(1, 3)}
	got := QuadPolygonIntersection(q.P0, q.P1, q.P2, tri)
	diff(t, NewIntersection(Intersecting, Pt(1-d, 0.5), Pt(1+d, 0.5)), got, approx(1e-9), unordered)

	square := []Point{Pt(0.5, -1), Pt(2.5, -1), Pt(2.5, 1), Pt(0.5, 1)}
	got = CubicPolygonIntersection(c.P0, c.P1, c.P2, c.P3, square)
	diff(t, NewIntersection(Intersecting, Pt(0.5, 5.0/9), Pt(2.5, -5.0/9)), got, approx(1e-9), unordered)

	if CubicPolygonIntersects(c.P0, c.P1, c.P2, c.P3, nil) {
		t.Error("empty polygon shouldn't intersect")
	}
	if QuadPolygonIntersects(q.P0, q.P1, q.P2, []Point{Pt(5, 5), Pt(6, 5), Pt(6, 6)}) {
		t.Error("distant polygon shouldn't intersect")
	}
}

func TestCurveIntersects(t *testing.T) {
	c := sCurve
	q := hump
	v := QuadBez{Pt(0, 1), Pt(1.5, -3), Pt(3, 1)}
	far := Vec(20, 20)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"quad cubic", QuadCubicIntersects(v.P0, v.P1, v.P2, c.P0, c.P1, c.P2, c.P3), true},
		{"quad cubic far", QuadCubicIntersects(
			v.P0.Translate(far), v.P1.Translate(far), v.P2.Translate(far),
			c.P0, c.P1, c.P2, c.P3), false},
		{"cubic circle", CubicCircleIntersects(c.P0, c.P1, c.P2, c.P3, Pt(1.5, 0), 1), true},
		{"cubic circle far", CubicCircleIntersects(c.P0, c.P1, c.P2, c.P3, Pt(20, 20), 1), false},
		{"quad circle", QuadCircleIntersects(q.P0, q.P1, q.P2, Pt(1, 0), 0.9), true},
		{"quad circle far", QuadCircleIntersects(q.P0, q.P1, q.P2, Pt(20, 20), 0.9), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, tt.got, tt.want)
		}
	}
}
