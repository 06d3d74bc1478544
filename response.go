package hexbounce

// Response resolves the ball against the hexagon's walls after it has moved.
// It returns the number of walls the ball was pushed out of.
type Response interface {
	Resolve(ball *Ball, edges []Segment, hex *Hexagon, m *Model) int
}

// ClampedResponse visits every wall, pushes the ball out along the contact
// normal and reflects it, scaling the whole velocity by the restitution.
type ClampedResponse struct{}

func (ClampedResponse) Resolve(ball *Ball, edges []Segment, hex *Hexagon, m *Model) int {
	var hits int
	for _, edge := range edges {
		contact, ok := CircleToSegment(ball.Position, ball.Radius, edge)
		if !ok {
			continue
		}
		hits++

		overlap := contact.Depth(ball.Radius)
		ball.Position = ball.Position.Add(contact.Normal.Mult(overlap))
		ball.Velocity = ball.Velocity.Reflect(contact.Normal).Mult(m.Restitution)
	}
	return hits
}

// VectorResponse snaps the ball to exactly one radius from the nearest point
// of any wall it strictly overlaps.
type VectorResponse struct{}

func (VectorResponse) Resolve(ball *Ball, edges []Segment, hex *Hexagon, m *Model) int {
	var hits int
	for _, edge := range edges {
		if edge.Length() == 0 {
			continue
		}
		closest, _ := edge.Closest(ball.Position)
		if ball.Position.Distance(closest) >= ball.Radius {
			continue
		}
		hits++

		n := ball.Position.Sub(closest).Normalize()
		ball.Position = closest.Add(n.Mult(ball.Radius))
		ball.Velocity = ball.Velocity.Reflect(n).Mult(m.Restitution)
	}
	return hits
}

// TangentResponse uses the wall's perpendicular, turned to face the ball, as
// the normal and bleeds off velocity along the wall by the surface friction.
type TangentResponse struct{}

func (TangentResponse) Resolve(ball *Ball, edges []Segment, hex *Hexagon, m *Model) int {
	var hits int
	for _, edge := range edges {
		if edge.Length() == 0 {
			continue
		}
		closest, _ := edge.Closest(ball.Position)
		dist := ball.Position.Distance(closest)
		if dist > ball.Radius {
			continue
		}
		hits++

		n := edge.Delta().Perp().Normalize()
		if n.Dot(ball.Position.Sub(closest)) < 0 {
			n = n.Neg()
		}

		ball.Position = ball.Position.Add(n.Mult(ball.Radius - dist))
		v := ball.Velocity.Reflect(n).Mult(m.Restitution)

		parallel := n.ReversePerp()
		along := parallel.Mult(v.Dot(parallel))
		ball.Velocity = v.Sub(along).Add(along.Mult(m.SurfaceFriction))
	}
	return hits
}

// LineResponse measures distance to each wall's infinite line and accepts
// the first wall whose endpoints bracket the ball.
type LineResponse struct{}

func (LineResponse) Resolve(ball *Ball, edges []Segment, hex *Hexagon, m *Model) int {
	for _, edge := range edges {
		contact, ok := CircleToLine(ball.Position, ball.Radius, edge)
		if !ok {
			continue
		}

		ball.Position = ball.Position.Add(contact.Normal.Mult(contact.Depth(ball.Radius)))
		ball.Velocity = ball.Velocity.Reflect(contact.Normal).Mult(m.Restitution)
		return 1
	}
	return 0
}

// RigidResponse treats every wall as a half-plane of the convex hexagon, so a
// ball that crossed a wall in one frame is still pushed back inside. Velocity
// is reflected relative to the moving wall and only while approaching it.
type RigidResponse struct{}

func (RigidResponse) Resolve(ball *Ball, edges []Segment, hex *Hexagon, m *Model) int {
	var hits int
	for _, edge := range edges {
		if edge.Length() == 0 {
			continue
		}
		d := edge.SignedDistance(ball.Position)
		if d >= ball.Radius {
			continue
		}
		hits++

		n := edge.InwardNormal()
		ball.Position = ball.Position.Add(n.Mult(ball.Radius - d))

		wall := hex.SurfaceVelocity(ball.Position.Sub(n.Mult(ball.Radius)))
		rel := ball.Velocity.Sub(wall)
		vn := rel.Dot(n)
		if vn >= 0 {
			continue
		}

		normal := n.Mult(vn)
		tangent := rel.Sub(normal)
		rel = tangent.Mult(m.SurfaceFriction).Sub(normal.Mult(m.Restitution))
		ball.Velocity = rel.Add(wall)
	}
	return hits
}
