package intersect

import (
	"iter"
)

// Polygon is a closed polygon described by its vertices. The edge from the
// last vertex back to the first is implied.
//
// A Polygon is treated as immutable; no function in this package modifies
// its elements.
type Polygon []Point

// Edges returns an iterator over the polygon's edges, including the closing
// edge. Polygons with fewer than two vertices have no edges.
func (p Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if len(p) < 2 {
			return
		}
		for i, pt := range p {
			next := p[(i+1)%len(p)]
			if !yield(Line{pt, next}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all vertices.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

func (p Polygon) IsNaN() bool {
	for _, pt := range p {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}
