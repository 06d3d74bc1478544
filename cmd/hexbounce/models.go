package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"github.com/jakecoffman/hexbounce"
)

var cmdModels = &subcommands.Command{
	UsageLine: "models",
	ShortDesc: "list the response models",
	CommandRun: func() subcommands.CommandRun {
		return &modelsRun{}
	},
}

type modelsRun struct {
	subcommands.CommandRunBase
}

func (c *modelsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		printError(a, errors.Errorf("unexpected arguments %q", args))
		return 1
	}
	w := tabwriter.NewWriter(a.GetOut(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRAVITY\tRESTITUTION\tFRICTION\tTITLE")
	for _, m := range hexbounce.Models() {
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\n", m.Name, m.Gravity, m.Restitution, m.SurfaceFriction, m.Title)
	}
	if err := w.Flush(); err != nil {
		printError(a, err)
		return 1
	}
	return 0
}
