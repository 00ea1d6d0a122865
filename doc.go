// Package intersect decides whether pairs of 2D primitives intersect and
// computes their intersection points.
//
// # Primitives
//
// The package works with the following shapes:
//   - [Point]
//   - [Line], treated as a segment
//   - [Rect] and [Polygon], treated as their outlines
//   - [Circle]
//   - [Ellipse], optionally rotated
//   - [QuadBez] and [CubicBez]
//
// All of them are immutable values. No function in this package modifies its
// arguments, and every result is freshly allocated and owned by the caller.
// The package has no mutable state and is safe for concurrent use.
//
// # Results
//
// Every algorithm returns an [Intersection], which pairs a [Status] with the
// intersection points in the order they were found. Only the [Intersecting]
// status guarantees points. The other statuses explain why there are none:
// segments may be [Parallel] or [Coincident], a segment may lie entirely
// [Inside] or [Outside] of a circle. Which statuses an algorithm reports is
// documented on the algorithm; they aren't uniform across pairs.
//
// # Algorithms
//
// Each supported pair of primitives has two functions, such as
// [CircleCircleIntersection] and [CircleCircleIntersects]. They operate on
// points and scalars rather than shape values. [Intersect] and [Intersects]
// dispatch on the dynamic types of two [Primitive] values instead.
//
// Lines and circles are intersected in closed form. Ellipses are written as
// implicit conics and x is eliminated with the [Bezout] resultant, leaving a
// quartic in y. Bézier curves are intersected with lines by substituting the
// curve into the line's implicit equation, and with each other by
// eliminating one curve's parameter with a Bézout matrix resultant, which
// for two cubics leaves a polynomial of degree nine. The roots of these
// polynomials are found by [Poly], and candidates are checked against the
// original equations, as elimination introduces extraneous roots.
//
// Rectangles and polygons are decomposed into their edges, and the results
// of the edges are combined.
//
// # Tolerances
//
// Classification near thresholds uses absolute tolerances, see [Epsilon].
// Inputs within a tolerance of a threshold, such as nearly parallel segments
// or nearly touching circles, may flip between classifications. Point
// containment in segments uses exact arithmetic; see
// [PointSegmentIntersection].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [Cubic-line intersection] by Lubos Brieda
//   - [Implicitization and parametrization of rational curves and surfaces] by Thomas Sederberg
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Cubic-line intersection]: https://www.particleincell.com/2013/cubic-line-intersection/
// [Implicitization and parametrization of rational curves and surfaces]: https://scholarsarchive.byu.edu/facpub/1/
package intersect
