package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/renderer"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	annualReturn   float64
	monthlySavings float64
	months         int
	assets         float64
	target         float64
	json           bool
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "project the assets and find when the FIRE target is reached"
}
func (*simulateCmd) Usage() string {
	return `fire simulate [-return <percent>] [-savings <yen>] [-months <n>] [-assets <yen>] [-target <yen>] [-json]

Projects the dashboard's assets month by month, with compound growth and
monthly savings, and reports when the target is reached.

See 'fire topic simulate'.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.annualReturn, "return", minifire.DefaultAnnualReturn, "annual return in percent, between 1 and 10")
	f.Float64Var(&c.monthlySavings, "savings", 0, "monthly savings in yen, between 0 and 200000 (default: the dashboard's monthly savings target)")
	f.IntVar(&c.months, "months", minifire.DefaultHorizonMonths, "length of the projection in months")
	f.Float64Var(&c.assets, "assets", 0, "current assets in yen (default: the dashboard's total)")
	f.Float64Var(&c.target, "target", 0, "target assets in yen (default: the dashboard's target)")
	f.BoolVar(&c.json, "json", false, "print the monthly projection as JSON")
}

// scenario returns the profile and scenario described by the dashboard and
// the flags actually set.
func (c *simulateCmd) scenario(d *minifire.Dashboard, f *flag.FlagSet) (minifire.Profile, minifire.Scenario, error) {
	p := d.Profile()
	s := minifire.DefaultScenario(p)
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "return":
			s.AnnualReturn = c.annualReturn
			if !minifire.ReturnRange.Contains(c.annualReturn) {
				err = fmt.Errorf("-return must be between %v and %v, got %v", minifire.ReturnRange.Min, minifire.ReturnRange.Max, c.annualReturn)
			}
		case "savings":
			s.MonthlySavings = c.monthlySavings
			if !minifire.SavingsRange.Contains(c.monthlySavings) {
				err = fmt.Errorf("-savings must be between %v and %v, got %v", minifire.SavingsRange.Min, minifire.SavingsRange.Max, c.monthlySavings)
			}
		case "months":
			s.HorizonMonths = c.months
		case "assets":
			p.CurrentAssets = c.assets
		case "target":
			p.TargetAssets = c.target
		}
	})
	return p, s, err
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", f.Args())
		return subcommands.ExitUsageError
	}
	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	p, s, err := c.scenario(d, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := minifire.NewSimulationReport(p, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.Projection); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding projection: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ProjectionMarkdown(r))
	return subcommands.ExitSuccess
}
