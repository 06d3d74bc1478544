package hexbounce

import "math"

// Contact describes a circle touching one wall.
type Contact struct {
	// Point on the wall nearest the circle's center.
	Point Vector
	// Unit normal pointing from the wall toward the circle's center.
	Normal Vector
	// Distance from Point to the circle's center.
	Distance float64
}

// Depth is how far the circle overlaps the wall.
func (c Contact) Depth(radius float64) float64 {
	return radius - c.Distance
}

// CircleToSegment tests a circle against a finite segment using the clamped
// closest point. A zero length segment behaves as a point. When the center
// lies exactly on the segment the normal falls back to the segment direction.
func CircleToSegment(center Vector, radius float64, seg Segment) (Contact, bool) {
	closest, _ := seg.Closest(center)
	delta := center.Sub(closest)
	dist := delta.Length()
	if dist > radius {
		return Contact{}, false
	}

	var n Vector
	if dist != 0 {
		n = delta.Mult(1 / dist)
	} else {
		n = seg.Delta().Normalize()
	}
	return Contact{Point: closest, Normal: n, Distance: dist}, true
}

// CircleToLine tests a circle against the infinite line through seg, then
// rejects hits whose projection falls outside the segment's endpoints. The
// normal is the line normal oriented toward the circle's center.
func CircleToLine(center Vector, radius float64, seg Segment) (Contact, bool) {
	a, b, c := seg.Line()
	norm := math.Sqrt(a*a + b*b)
	if norm == 0 {
		return Contact{}, false
	}

	side := a*center.X + b*center.Y + c
	dist := math.Abs(side) / norm
	if dist > radius {
		return Contact{}, false
	}

	delta := seg.Delta()
	along := center.Sub(seg.A).Dot(delta)
	if along < 0 || along > delta.LengthSq() {
		return Contact{}, false
	}

	n := Vector{a / norm, b / norm}
	if side < 0 {
		n = n.Neg()
	}
	return Contact{
		Point:    center.Sub(n.Mult(dist)),
		Normal:   n,
		Distance: dist,
	}, true
}
