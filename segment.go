package hexbounce

// Segment is one wall of a polygon, running from A to B.
type Segment struct {
	A, B Vector
}

func (seg Segment) Delta() Vector {
	return seg.B.Sub(seg.A)
}

func (seg Segment) Length() float64 {
	return seg.Delta().Length()
}

// Closest returns the point on the segment nearest to p and its parameter
// along A->B in [0, 1].
func (seg Segment) Closest(p Vector) (Vector, float64) {
	delta := seg.Delta()
	lengthSq := delta.LengthSq()
	if lengthSq == 0 {
		return seg.A, 0
	}
	t := Clamp01(p.Sub(seg.A).Dot(delta) / lengthSq)
	return seg.A.Add(delta.Mult(t)), t
}

// InwardNormal is the unit normal on the left of A->B, which points into
// a polygon wound counter-clockwise.
func (seg Segment) InwardNormal() Vector {
	return seg.Delta().Perp().Normalize()
}

// SignedDistance is the distance from the segment's line to p, positive on
// the InwardNormal side.
func (seg Segment) SignedDistance(p Vector) float64 {
	return p.Sub(seg.A).Dot(seg.InwardNormal())
}

// Line returns the coefficients of Ax + By + C = 0 through A and B.
func (seg Segment) Line() (a, b, c float64) {
	a = seg.B.Y - seg.A.Y
	b = seg.A.X - seg.B.X
	c = seg.B.X*seg.A.Y - seg.A.X*seg.B.Y
	return
}
