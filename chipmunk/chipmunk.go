// Package chipmunk runs a hexbounce model on the Chipmunk rigid body solver
// instead of the closed form responses.
package chipmunk

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/op/go-logging"

	"github.com/jakecoffman/hexbounce"
)

var log = logging.MustGetLogger("chipmunk")

// Substeps per frame. The ball covers less than its radius per substep at
// any speed the models reach.
const substeps = 4

const tick = 1.0 / hexbounce.FPS

// Simulation is a kinematic hexagon made of six segment shapes with a
// dynamic circle inside. It keeps the per-frame units of hexbounce.
type Simulation struct {
	model  *hexbounce.Model
	center hexbounce.Vector

	space   *cp.Space
	hexBody *cp.Body
	ball    *cp.Body

	frame int
}

var _ hexbounce.Simulator = (*Simulation)(nil)

func NewSimulation(m *hexbounce.Model, center hexbounce.Vector) *Simulation {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: m.Gravity * hexbounce.FPS * hexbounce.FPS})
	space.SetDamping(math.Pow(m.Damping, hexbounce.FPS))

	// An infinite mass body we spin by hand, like the tumble demo's box.
	hexBody := space.AddBody(cp.NewKinematicBody())
	hexBody.SetPosition(vect(center))
	hexBody.SetAngularVelocity(m.AngularVelocity * hexbounce.FPS)

	local := hexbounce.Hexagon{Radius: m.HexagonRadius}
	for _, edge := range local.Edges() {
		shape := space.AddShape(cp.NewSegment(hexBody, vect(edge.A), vect(edge.B), m.Style.LineWidth/2))
		shape.SetElasticity(m.Restitution)
		shape.SetFriction(1 - m.SurfaceFriction)
	}

	mass := 1.0
	ball := space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, m.BallRadius, cp.Vector{})))
	shape := space.AddShape(cp.NewCircle(ball, m.BallRadius, cp.Vector{}))
	shape.SetElasticity(1)
	shape.SetFriction(1)

	s := &Simulation{
		model:   m,
		center:  center,
		space:   space,
		hexBody: hexBody,
		ball:    ball,
	}
	s.Reset()
	return s
}

func (s *Simulation) Step() {
	dt := tick / substeps
	for i := 0; i < substeps; i++ {
		s.space.Step(dt)
	}
	s.frame++
}

func (s *Simulation) Reset() {
	start := s.center.Add(s.model.StartOffset)
	s.ball.SetPosition(vect(start))
	s.ball.SetVelocityVector(vect(s.model.StartVelocity.Mult(hexbounce.FPS)))
	s.ball.SetAngularVelocity(0)
	log.Debugf("%s: reset at %v", s.model.Name, start)
}

func (s *Simulation) AdjustSpeed(dir float64) {
	w := s.hexBody.AngularVelocity() + dir*s.model.SpeedStep*hexbounce.FPS
	s.hexBody.SetAngularVelocity(w)
	log.Debugf("%s: angular velocity %.4f rad/frame", s.model.Name, w/hexbounce.FPS)
}

func (s *Simulation) Ball() hexbounce.Ball {
	return hexbounce.Ball{
		Position: vector(s.ball.Position()),
		Velocity: vector(s.ball.Velocity()).Mult(tick),
		Radius:   s.model.BallRadius,
	}
}

func (s *Simulation) Hexagon() hexbounce.Hexagon {
	return hexbounce.Hexagon{
		Center:          vector(s.hexBody.Position()),
		Radius:          s.model.HexagonRadius,
		Angle:           s.hexBody.Angle(),
		AngularVelocity: s.hexBody.AngularVelocity() * tick,
	}
}

func (s *Simulation) Model() *hexbounce.Model {
	return s.model
}

func (s *Simulation) Frame() int {
	return s.frame
}

func vect(v hexbounce.Vector) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func vector(v cp.Vector) hexbounce.Vector {
	return hexbounce.Vector{X: v.X, Y: v.Y}
}
