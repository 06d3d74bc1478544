package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/jakecoffman/hexbounce"
)

const helperEnv = "HEXBOUNCE_HELPER_PROCESS"

// helperCommand re-runs the test binary as a stand-in simulation.
func helperCommand(ctx context.Context, model string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess", "--", model)
	cmd.Env = append(os.Environ(), helperEnv+"=1")
	return cmd
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		os.Exit(2)
	}
	switch args[1] {
	case "fail":
		os.Exit(3)
	case "sleep":
		time.Sleep(time.Minute)
	}
	os.Exit(0)
}

func waitExit(l *Launcher) Exit {
	select {
	case e := <-l.Exits():
		return e
	case <-time.After(30 * time.Second):
		return Exit{Err: fmt.Errorf("timed out waiting for the child")}
	}
}

func TestLayout(t *testing.T) {
	Convey("Layout", t, func() {
		buttons := Layout(DefaultEntries, 800, 600)
		So(buttons, ShouldHaveLength, 4)

		Convey("spreads equal buttons across the bottom panel", func() {
			for i, b := range buttons {
				x := float64(10 + i*197)
				So(b.BB, ShouldResemble, hexbounce.NewBB(x, 530, x+187, 590))
				So(b.Entry, ShouldResemble, DefaultEntries[i])
			}
		})

		Convey("has nothing to lay out without entries", func() {
			So(Layout(nil, 800, 600), ShouldBeNil)
		})
	})
}

func TestLauncher(t *testing.T) {
	Convey("Given a launcher", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		entries := []Entry{
			{Label: "Quick", Model: "clamped"},
			{Label: "Broken", Model: "fail"},
			{Label: "Slow", Model: "sleep"},
		}
		l := New(ctx, entries, 800, 600, helperCommand)
		quick, broken, slow := l.Buttons[0].Center(), l.Buttons[1].Center(), l.Buttons[2].Center()

		Convey("hovering marks only the button under the cursor", func() {
			l.MouseMove(broken)
			So(l.Buttons[0].Hovered, ShouldBeFalse)
			So(l.Buttons[1].Hovered, ShouldBeTrue)

			l.MouseMove(hexbounce.Vector{X: 400, Y: 100})
			for _, b := range l.Buttons {
				So(b.Hovered, ShouldBeFalse)
			}
		})

		Convey("clicking outside the buttons launches nothing", func() {
			launched, err := l.Click(hexbounce.Vector{X: 400, Y: 300})
			So(err, ShouldBeNil)
			So(launched, ShouldBeFalse)
		})

		Convey("clicking a button runs its child until it exits", func() {
			launched, err := l.Click(quick)
			So(err, ShouldBeNil)
			So(launched, ShouldBeTrue)

			exit := waitExit(l)
			So(exit.Err, ShouldBeNil)
			So(exit.Entry, ShouldResemble, entries[0])

			_, running := l.Running()
			So(running, ShouldBeFalse)
			l.Wait()
		})

		Convey("a failing child reports its exit status", func() {
			_, err := l.Click(broken)
			So(err, ShouldBeNil)

			exit := waitExit(l)
			So(exit.Err, ShouldNotBeNil)
			l.Wait()
		})

		Convey("while a child runs", func() {
			_, err := l.Click(slow)
			So(err, ShouldBeNil)
			entry, running := l.Running()
			So(running, ShouldBeTrue)
			So(entry, ShouldResemble, entries[2])

			Convey("other clicks are ignored", func() {
				launched, err := l.Click(quick)
				So(err, ShouldBeNil)
				So(launched, ShouldBeFalse)
				So(l.Launch(entries[0]), ShouldNotBeNil)
			})

			Convey("cancelling the context kills it", func() {
				cancel()
				exit := waitExit(l)
				So(exit.Entry, ShouldResemble, entries[2])
				So(exit.Err, ShouldNotBeNil)

				_, running := l.Running()
				So(running, ShouldBeFalse)
			})

			Reset(func() {
				cancel()
				l.Wait()
			})
		})

		Convey("a child that cannot start is an error", func() {
			l := New(ctx, entries, 800, 600, func(ctx context.Context, model string) *exec.Cmd {
				return exec.CommandContext(ctx, "/nonexistent/hexbounce")
			})
			launched, err := l.Click(quick)
			So(err, ShouldNotBeNil)
			So(launched, ShouldBeFalse)

			_, running := l.Running()
			So(running, ShouldBeFalse)
		})
	})
}
