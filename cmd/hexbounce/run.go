package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/jakecoffman/hexbounce"
	"github.com/jakecoffman/hexbounce/chipmunk"
	"github.com/jakecoffman/hexbounce/render"
)

var cmdRun = &subcommands.Command{
	UsageLine: "run -model <name> [-engine]",
	ShortDesc: "open one simulation window",
	LongDesc: `Open a window with a ball bouncing inside a spinning hexagon.

Space resets the ball, Up and Down change the rotation speed, Q or Escape quit.
With -engine the scene runs on the rigid body solver instead of the model's
own collision response.`,
	CommandRun: func() subcommands.CommandRun {
		c := &runRun{}
		c.logFlags.register(&c.Flags)
		c.Flags.StringVar(&c.model, "model", "tangent", "response model, see the models command")
		c.Flags.BoolVar(&c.engine, "engine", false, "simulate with the rigid body solver")
		return c
	},
}

type runRun struct {
	subcommands.CommandRunBase
	logFlags

	model  string
	engine bool
}

func (c *runRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.innerRun(args); err != nil {
		printError(a, err)
		return 1
	}
	return 0
}

func (c *runRun) innerRun(args []string) error {
	if len(args) != 0 {
		return errors.Errorf("unexpected arguments %q", args)
	}
	if err := c.logFlags.setup(); err != nil {
		return err
	}
	m, err := hexbounce.LookupModel(c.model)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	center := hexbounce.Vector{X: hexbounce.Width / 2, Y: hexbounce.Height / 2}
	var sim hexbounce.Simulator
	title := m.Title
	if c.engine {
		sim = chipmunk.NewSimulation(m, center)
		title += " (chipmunk)"
	} else {
		sim = hexbounce.NewSimulation(m, center)
	}
	log.Infof("running %s", title)

	return render.Main(title, hexbounce.Width, hexbounce.Height, render.RGBA(m.Style.Background), 1.0/hexbounce.FPS, &simScene{sim: sim})
}

// simScene steps a simulation once per tick and draws it.
type simScene struct {
	sim hexbounce.Simulator
}

func (s *simScene) Update(dt float64) {
	s.sim.Step()
}

func (s *simScene) Draw() {
	style := s.sim.Model().Style
	hex := s.sim.Hexagon()
	render.DrawOutline(hex.Vertices(), style.LineWidth, render.RGBA(style.Hexagon))

	ball := s.sim.Ball()
	fill := render.RGBA(style.Ball)
	render.DrawCircle(ball.Position, 0, ball.Radius, fill, fill)
}

func (s *simScene) Key(key glfw.Key, action glfw.Action) {
	if action == glfw.Release {
		return
	}
	switch key {
	case glfw.KeySpace:
		if action == glfw.Press {
			s.sim.Reset()
		}
	case glfw.KeyUp:
		s.sim.AdjustSpeed(1)
		log.Debugf("angular velocity %.4f", s.sim.Hexagon().AngularVelocity)
	case glfw.KeyDown:
		s.sim.AdjustSpeed(-1)
		log.Debugf("angular velocity %.4f", s.sim.Hexagon().AngularVelocity)
	}
}
