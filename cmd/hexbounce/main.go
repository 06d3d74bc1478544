// Command hexbounce shows a ball bouncing inside a spinning hexagon, one
// collision response model per window, and a launcher that opens them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("main")

// logFormat prints pid, time, file and level, colored, then the message.
const logFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s}]%{color:reset} %{message}`

var application = &subcommands.DefaultApplication{
	Name:  "hexbounce",
	Title: "Ball in a spinning hexagon.",
	Commands: []*subcommands.Command{
		cmdRun,
		cmdLaunch,
		cmdModels,
		subcommands.CmdHelp,
	},
}

// logFlags is embedded by every command that logs.
type logFlags struct {
	level string
}

func (f *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.level, "log-level", "info", "one of debug, info, notice, warning, error, critical")
}

// setup installs the stderr backend at the requested level.
func (f *logFlags) setup() error {
	level, err := logging.LogLevel(f.level)
	if err != nil {
		return errors.Wrapf(err, "bad -log-level %q", f.level)
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0),
			logging.MustStringFormatter(logFormat)))
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}

func printError(a subcommands.Application, err error) {
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
