package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/tui"
	"github.com/google/subcommands"
)

type tuiCmd struct{}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "simulate interactively" }
func (*tuiCmd) Usage() string {
	return `fire tui

Opens the simulation in an interactive view:
  left/right  annual return -/+ 0.1%
  up/down     monthly savings +/- 5,000 yen
  q           quit
`
}

func (*tuiCmd) SetFlags(*flag.FlagSet) {}

func (*tuiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	p := d.Profile()
	if err := tui.Run(p, minifire.DefaultScenario(p)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running the simulator: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
