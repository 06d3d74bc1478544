// Package launcher runs one simulation at a time as a child process and
// tracks it until it exits.
package launcher

import (
	"context"
	"os/exec"
	"sync"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/jakecoffman/hexbounce"
)

var log = logging.MustGetLogger("launcher")

// Panel layout, in pixels.
const (
	ButtonHeight = 80
	ButtonMargin = 10
)

// Entry is one launchable simulation.
type Entry struct {
	Label string
	Model string
}

var DefaultEntries = []Entry{
	{Label: "Clamped", Model: "clamped"},
	{Label: "Vector", Model: "vector"},
	{Label: "Tangent", Model: "tangent"},
	{Label: "Line", Model: "line"},
}

type Button struct {
	hexbounce.BB
	Entry   Entry
	Hovered bool
}

// Layout spreads one button per entry across a panel at the bottom of a
// width x height window.
func Layout(entries []Entry, width, height int) []*Button {
	if len(entries) == 0 {
		return nil
	}
	n := len(entries)
	area := width - 2*ButtonMargin
	w := (area - (n-1)*ButtonMargin) / n
	y := height - ButtonHeight + ButtonMargin
	h := ButtonHeight - 2*ButtonMargin

	buttons := make([]*Button, n)
	for i, entry := range entries {
		x := ButtonMargin + i*(w+ButtonMargin)
		buttons[i] = &Button{
			BB:    hexbounce.NewBB(float64(x), float64(y), float64(x+w), float64(y+h)),
			Entry: entry,
		}
	}
	return buttons
}

// CommandFunc builds the child process for a model.
type CommandFunc func(ctx context.Context, model string) *exec.Cmd

// Exit reports a child that has finished.
type Exit struct {
	Entry Entry
	Err   error
}

// Launcher owns the buttons and at most one running child.
type Launcher struct {
	Buttons []*Button

	ctx     context.Context
	command CommandFunc

	mu      sync.Mutex
	current *exec.Cmd
	running Entry

	exits chan Exit
	wg    sync.WaitGroup
}

// New makes a launcher whose children are killed when ctx is cancelled.
func New(ctx context.Context, entries []Entry, width, height int, command CommandFunc) *Launcher {
	return &Launcher{
		Buttons: Layout(entries, width, height),
		ctx:     ctx,
		command: command,
		exits:   make(chan Exit, 1),
	}
}

// Running reports whether a child is alive and which entry it is.
func (l *Launcher) Running() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running, l.current != nil
}

// Exits delivers one value per finished child.
func (l *Launcher) Exits() <-chan Exit {
	return l.exits
}

// MouseMove updates which button is under the cursor.
func (l *Launcher) MouseMove(p hexbounce.Vector) {
	for _, b := range l.Buttons {
		b.Hovered = b.ContainsVect(p)
	}
}

// Click launches the hovered button's entry. It returns false when nothing
// was launched, either because no button was hit or a child is running.
func (l *Launcher) Click(p hexbounce.Vector) (bool, error) {
	l.MouseMove(p)
	for _, b := range l.Buttons {
		if b.Hovered {
			if _, running := l.Running(); running {
				log.Infof("%s ignored, a simulation is already running", b.Entry.Label)
				return false, nil
			}
			if err := l.Launch(b.Entry); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Launch starts entry's child process and a goroutine that blocks on it.
func (l *Launcher) Launch(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		return errors.Errorf("cannot launch %s: %s is still running", entry.Label, l.running.Label)
	}

	cmd := l.command(l.ctx, entry.Model)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "launching %s", entry.Label)
	}
	log.Infof("launched %s (pid %d)", entry.Label, cmd.Process.Pid)

	l.current = cmd
	l.running = entry
	l.wg.Add(1)
	go l.monitor(cmd, entry)
	return nil
}

func (l *Launcher) monitor(cmd *exec.Cmd, entry Entry) {
	defer l.wg.Done()
	err := cmd.Wait()
	if err != nil {
		log.Warningf("%s exited: %v", entry.Label, err)
	} else {
		log.Infof("%s exited", entry.Label)
	}

	l.mu.Lock()
	if l.current == cmd {
		l.current = nil
		l.running = Entry{}
	}
	l.mu.Unlock()

	select {
	case l.exits <- Exit{Entry: entry, Err: err}:
	default:
		// An unread exit is already queued.
	}
}

// Wait blocks until every launched child has been reaped.
func (l *Launcher) Wait() {
	l.wg.Wait()
}
