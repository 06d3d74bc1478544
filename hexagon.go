package hexbounce

import "math"

const HexagonSides = 6

// Hexagon is a regular hexagon spinning about its center. Angle and
// AngularVelocity are in radians and radians per frame.
type Hexagon struct {
	Center          Vector
	Radius          float64
	Angle           float64
	AngularVelocity float64
}

func (h *Hexagon) Update() {
	h.Angle += h.AngularVelocity
}

func (h *Hexagon) Transform() Transform {
	return NewTransformRigid(h.Center, h.Angle)
}

// Vertices are wound counter-clockwise, vertex i sitting at Angle + i*60°.
func (h *Hexagon) Vertices() []Vector {
	t := h.Transform()
	verts := make([]Vector, HexagonSides)
	for i := range verts {
		local := ForAngle(float64(i) * 2 * math.Pi / HexagonSides).Mult(h.Radius)
		verts[i] = t.Point(local)
	}
	return verts
}

// Edges returns vertex i to vertex i+1 for every side.
func (h *Hexagon) Edges() []Segment {
	verts := h.Vertices()
	edges := make([]Segment, len(verts))
	for i := range verts {
		edges[i] = Segment{verts[i], verts[(i+1)%len(verts)]}
	}
	return edges
}

// Apothem is the distance from the center to the middle of a side.
func (h *Hexagon) Apothem() float64 {
	return h.Radius * math.Cos(math.Pi/HexagonSides)
}

// SurfaceVelocity is the velocity of the wall material at p, per frame.
func (h *Hexagon) SurfaceVelocity(p Vector) Vector {
	return p.Sub(h.Center).Perp().Mult(h.AngularVelocity)
}

func (h *Hexagon) BB() BB {
	return NewBBForCircle(h.Center, h.Radius)
}

// Contains reports whether p is inside the hexagon or on its boundary.
func (h *Hexagon) Contains(p Vector) bool {
	for _, edge := range h.Edges() {
		if edge.SignedDistance(p) < 0 {
			return false
		}
	}
	return true
}
