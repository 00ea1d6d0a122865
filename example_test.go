package intersect_test

import (
	"fmt"

	"honnef.co/go/intersect"
)

func ExampleCircleCircleIntersection() {
	x := intersect.CircleCircleIntersection(intersect.Pt(0, 0), 5, intersect.Pt(8, 0), 5)
	fmt.Println(x)

	x = intersect.CircleCircleIntersection(intersect.Pt(0, 0), 5, intersect.Pt(20, 0), 5)
	fmt.Println(x)
	// Output:
	// Intersecting [(4, 3) (4, -3)]
	// Outside
}

func ExampleSegmentSegmentIntersection() {
	x := intersect.SegmentSegmentIntersection(
		intersect.Pt(0, 0), intersect.Pt(10, 10),
		intersect.Pt(0, 10), intersect.Pt(10, 0),
	)
	fmt.Println(x, x.Intersects())

	// Overlapping collinear segments.
	x = intersect.SegmentSegmentIntersection(
		intersect.Pt(0, 0), intersect.Pt(10, 0),
		intersect.Pt(5, 0), intersect.Pt(15, 0),
	)
	fmt.Println(x.Status, x.Intersects())
	// Output:
	// Intersecting [(5, 5)] true
	// Coincident true
}

func ExampleIntersect() {
	r := intersect.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	l := intersect.Line{P0: intersect.Pt(5, -5), P1: intersect.Pt(5, 5)}
	x, err := intersect.Intersect(r, l)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)

	// Points can only be tested against lines and other points.
	_, err = intersect.Intersect(intersect.Circle{Center: intersect.Pt(0, 0), Radius: 1}, intersect.Pt(0, 0))
	fmt.Println(err)
	// Output:
	// Intersecting [(5, 0)]
	// point and circle: unsupported pair of primitives
}

func ExampleIntersects() {
	c := intersect.Circle{Center: intersect.Pt(0, 0), Radius: 1}
	far := intersect.CubicBez{
		P0: intersect.Pt(10, 10),
		P1: intersect.Pt(11, 12),
		P2: intersect.Pt(12, 8),
		P3: intersect.Pt(13, 10),
	}
	ok, err := intersect.Intersects(c, far)
	fmt.Println(ok, err)
	// Output:
	// false <nil>
}
