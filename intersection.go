package intersect

import (
	"fmt"
	"strings"
)

// Status classifies the outcome of an intersection computation.
type Status uint8

const (
	// NoIntersection means the shapes don't meet.
	NoIntersection Status = iota
	// Intersecting means the shapes meet in at least one point. It is the
	// only status that guarantees a non-empty list of points.
	Intersecting
	// Parallel means two lines have the same direction but don't overlap.
	Parallel
	// Coincident means the shapes overlap along a stretch rather than in
	// isolated points.
	Coincident
	// Tangent means the shapes touch without crossing.
	Tangent
	// Inside means one shape lies entirely inside the other.
	Inside
	// Outside means the shapes lie entirely outside of each other.
	Outside
)

func (s Status) String() string {
	switch s {
	case NoIntersection:
		return "NoIntersection"
	case Intersecting:
		return "Intersecting"
	case Parallel:
		return "Parallel"
	case Coincident:
		return "Coincident"
	case Tangent:
		return "Tangent"
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Intersection is the result of intersecting two shapes: a status and the
// intersection points, in the order they were found.
//
// Points are not deduplicated; a tangency can legitimately report the same
// point twice. Only [Intersecting] guarantees that Points is non-empty; the
// other statuses may carry points too, which aren't authoritative.
//
// Every function in this package returns a freshly allocated result that
// is exclusively owned by the caller.
type Intersection struct {
	Status Status
	Points []Point
}

// NewIntersection returns a result with the given status and points.
func NewIntersection(status Status, points ...Point) Intersection {
	return Intersection{
		Status: status,
		Points: points,
	}
}

// AppendPoint appends a point.
func (x *Intersection) AppendPoint(pt Point) {
	x.Points = append(x.Points, pt)
}

// AppendPoints appends points, preserving their order.
func (x *Intersection) AppendPoints(pts ...Point) {
	x.Points = append(x.Points, pts...)
}

// Count returns the number of points.
func (x Intersection) Count() int {
	return len(x.Points)
}

// Intersects reports whether the outlines of the two shapes share at least
// one point, that is whether the status is [Intersecting], [Coincident] or
// [Tangent].
func (x Intersection) Intersects() bool {
	switch x.Status {
	case Intersecting, Coincident, Tangent:
		return true
	default:
		return false
	}
}

func (x Intersection) String() string {
	if len(x.Points) == 0 {
		return x.Status.String()
	}
	pts := make([]string, len(x.Points))
	for i, pt := range x.Points {
		pts[i] = pt.String()
	}
	return fmt.Sprintf("%s [%s]", x.Status, strings.Join(pts, " "))
}

// accumulator collects the results of intersecting one shape with the parts
// of another, such as the edges of a polygon.
//
// The combined status is [Intersecting] if any part contributed a point, else
// [Coincident] if any part overlapped. Otherwise it is the status of the first
// part, or fallback if there were no parts.
type accumulator struct {
	out        Intersection
	first      Status
	n          int
	coincident bool
}

func (acc *accumulator) add(x Intersection) {
	if acc.n == 0 {
		acc.first = x.Status
	}
	acc.n++
	switch x.Status {
	case Intersecting:
		acc.out.AppendPoints(x.Points...)
	case Coincident:
		acc.coincident = true
	}
}

func (acc *accumulator) result(fallback Status) Intersection {
	switch {
	case len(acc.out.Points) > 0:
		acc.out.Status = Intersecting
	case acc.coincident:
		acc.out.Status = Coincident
	case acc.n > 0:
		acc.out.Status = acc.first
	default:
		acc.out.Status = fallback
	}
	return acc.out
}
