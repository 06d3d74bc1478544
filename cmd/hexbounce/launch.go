package main

import (
	"context"
	"image/color"
	"os"
	"os/exec"
	"os/signal"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/jakecoffman/hexbounce"
	"github.com/jakecoffman/hexbounce/launcher"
	"github.com/jakecoffman/hexbounce/render"
)

const launcherTitle = "Hexagon Launcher"

var (
	launcherBackground = color.RGBA{30, 30, 30, 255}
	panelColor         = color.RGBA{50, 50, 50, 255}
	buttonColor        = color.RGBA{70, 70, 70, 255}
	buttonHoverColor   = color.RGBA{100, 100, 100, 255}
	buttonBusyColor    = color.RGBA{60, 60, 60, 255}
	textColor          = color.RGBA{255, 255, 255, 255}
	dimTextColor       = color.RGBA{150, 150, 150, 255}
)

var cmdLaunch = &subcommands.Command{
	UsageLine: "launch",
	ShortDesc: "open the launcher window",
	LongDesc: `Open a window with one button per simulation. Clicking a button runs that
simulation in its own process. Only one simulation runs at a time, and it is
killed when the launcher closes.`,
	CommandRun: func() subcommands.CommandRun {
		c := &launchRun{}
		c.logFlags.register(&c.Flags)
		return c
	},
}

type launchRun struct {
	subcommands.CommandRunBase
	logFlags
}

func (c *launchRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.innerRun(args); err != nil {
		printError(a, err)
		return 1
	}
	return 0
}

func (c *launchRun) innerRun(args []string) error {
	if len(args) != 0 {
		return errors.Errorf("unexpected arguments %q", args)
	}
	if err := c.logFlags.setup(); err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "finding own executable")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	l := launcher.New(ctx, launcher.DefaultEntries, hexbounce.Width, hexbounce.Height, childCommand(exe, c.level))
	err = render.Main(launcherTitle, hexbounce.Width, hexbounce.Height, render.RGBA(launcherBackground), 1.0/hexbounce.FPS, &launchScene{launcher: l})

	// Closing the window takes the running simulation with it.
	cancel()
	l.Wait()
	return err
}

// childCommand runs a model with this same binary.
func childCommand(exe, level string) launcher.CommandFunc {
	return func(ctx context.Context, model string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, exe, "run", "-model", model, "-log-level", level)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd
	}
}

type launchScene struct {
	launcher *launcher.Launcher
}

func (s *launchScene) Update(dt float64) {
	select {
	case <-s.launcher.Exits():
		render.Focus()
	default:
	}
}

func (s *launchScene) Draw() {
	center := hexbounce.Width / 2.0
	render.DrawStringCentered(hexbounce.Vector{X: center, Y: hexbounce.Height / 3.0}, launcherTitle, 3, render.RGBA(textColor))

	running, busy := s.launcher.Running()
	instructions := "Click a button to launch a simulation"
	if busy {
		instructions = running.Label + " is running, close it to pick another"
	}
	render.DrawStringCentered(hexbounce.Vector{X: center, Y: hexbounce.Height / 2.0}, instructions, 2, render.RGBA(dimTextColor))

	panel := hexbounce.NewBB(0, hexbounce.Height-launcher.ButtonHeight, hexbounce.Width, hexbounce.Height)
	render.DrawBB(panel, 0, render.RGBA(panelColor))

	for _, b := range s.launcher.Buttons {
		fill, label := buttonColor, textColor
		switch {
		case busy:
			fill, label = buttonBusyColor, dimTextColor
		case b.Hovered:
			fill = buttonHoverColor
		}
		render.DrawBB(b.BB, 4, render.RGBA(fill))
		render.DrawStringCentered(b.Center(), b.Entry.Label, 2, render.RGBA(label))
	}
}

func (s *launchScene) MouseMove(p hexbounce.Vector) {
	s.launcher.MouseMove(p)
}

func (s *launchScene) MouseButton(p hexbounce.Vector, button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	if _, err := s.launcher.Click(p); err != nil {
		log.Errorf("%s", err)
	}
}
