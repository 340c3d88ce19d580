package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/renderer"
	"github.com/google/subcommands"
)

type strategyCmd struct {
	sector int
}

func (*strategyCmd) Name() string     { return "strategy" }
func (*strategyCmd) Synopsis() string { return "browse the sectors of the national growth strategy" }
func (*strategyCmd) Usage() string {
	return `fire strategy [-sector <id>]

Lists the sectors promoted by the national growth strategy, or with -sector
the key stocks of one of them. Use 'fire stock' to chart a stock.
`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.sector, "sector", 0, "id of the sector to list the stocks of")
}

func (c *strategyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := newAdvisor(ctx).NationalStrategy(ctx)
	if c.sector == 0 {
		printMarkdown(renderer.StrategyMarkdown(s))
		return subcommands.ExitSuccess
	}
	sec, ok := s.Sector(c.sector)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown sector %d\n", c.sector)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SectorMarkdown(sec))
	return subcommands.ExitSuccess
}

type stockCmd struct {
	code  string
	name  string
	rng   minifire.TimeRange
	point int
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "chart a stock with the news of each point" }
func (*stockCmd) Usage() string {
	return `fire stock -code <code> [-name <name>] [-range 1D|1M|3M|1Y] [-point <i>]

Charts a Japanese stock over the range, and shows the news that explains
the selected point, the latest by default.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	c.rng = minifire.Range1M
	f.StringVar(&c.code, "code", "", "securities code, e.g. 7203")
	f.StringVar(&c.name, "name", "", "company name (default: the code)")
	f.Var(&c.rng, "range", "chart range: 1D, 1M, 3M or 1Y")
	f.IntVar(&c.point, "point", -1, "index of the point to read the news of (default: the latest)")
}

func (c *stockCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Fprintln(os.Stderr, "Error: -code is required")
		return subcommands.ExitUsageError
	}
	name := c.name
	if name == "" {
		name = c.code
	}
	s := newAdvisor(ctx).StockDetail(ctx, c.code, name, c.rng)
	printMarkdown(renderer.StockMarkdown(s, c.rng, c.point))
	return subcommands.ExitSuccess
}
