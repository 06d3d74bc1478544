package hexbounce

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("hexbounce")

// Simulator is a ball in a spinning hexagon that advances one frame at a time.
type Simulator interface {
	Step()
	Reset()
	// AdjustSpeed changes the hexagon's angular velocity by dir speed steps.
	AdjustSpeed(dir float64)
	Ball() Ball
	Hexagon() Hexagon
	Model() *Model
}

// Simulation steps a Model with its own Response.
type Simulation struct {
	model   *Model
	center  Vector
	ball    Ball
	hexagon Hexagon

	frame    int
	contacts int
}

func NewSimulation(m *Model, center Vector) *Simulation {
	s := &Simulation{
		model:  m,
		center: center,
		hexagon: Hexagon{
			Center:          center,
			Radius:          m.HexagonRadius,
			AngularVelocity: m.AngularVelocity,
		},
	}
	s.Reset()
	return s
}

// Reset puts the ball back at its start. The hexagon keeps spinning as it was.
func (s *Simulation) Reset() {
	m := s.model
	s.ball = Ball{
		Position: s.center.Add(m.StartOffset),
		Velocity: m.StartVelocity,
		Radius:   m.BallRadius,
	}
	log.Debugf("%s: reset at %v", m.Name, s.ball.Position)
}

func (s *Simulation) AdjustSpeed(dir float64) {
	s.hexagon.AngularVelocity += dir * s.model.SpeedStep
	log.Debugf("%s: angular velocity %.4f rad/frame", s.model.Name, s.hexagon.AngularVelocity)
}

func (s *Simulation) Step() {
	m := s.model
	if m.RotateFirst {
		s.hexagon.Update()
	}

	s.ball.Velocity.Y += m.Gravity
	s.ball.Velocity = s.ball.Velocity.Mult(m.Damping)
	s.ball.Position = s.ball.Position.Add(s.ball.Velocity)

	if !m.RotateFirst {
		s.hexagon.Update()
	}

	s.frame++

	// The ball can't reach a wall while it's inside the inscribed circle.
	if s.ball.Position.Near(s.hexagon.Center, s.hexagon.Apothem()-s.ball.Radius) {
		return
	}
	s.contacts += m.Response.Resolve(&s.ball, s.hexagon.Edges(), &s.hexagon, m)
}

func (s *Simulation) Ball() Ball {
	return s.ball
}

func (s *Simulation) Hexagon() Hexagon {
	return s.hexagon
}

func (s *Simulation) Model() *Model {
	return s.model
}

// Frame is the number of steps taken since the simulation was created.
func (s *Simulation) Frame() int {
	return s.frame
}

// Contacts is the number of wall contacts resolved so far.
func (s *Simulation) Contacts() int {
	return s.contacts
}
