package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type dashboardCmd struct {
	timeout time.Duration
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the overview, the market and the advice at once" }
func (*dashboardCmd) Usage() string {
	return `fire dashboard [-timeout <duration>]

Shows the overview of the dashboard, the market insights and the advice.
Both AI requests run concurrently.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", 2*time.Minute, "maximum time to wait for the AI answers")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	adv := newAdvisor(ctx)

	var (
		insights []minifire.MarketInsight
		advice   minifire.Advice
	)
	// advisor calls do not fail, a timeout gives their placeholder.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		insights = adv.MarketInsights(ctx)
		return nil
	})
	g.Go(func() error {
		advice = adv.FireAdvice(ctx, d.Profile(), d.Expenses, d.Hustles)
		return nil
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(strings.Join([]string{
		renderer.OverviewMarkdown(d),
		renderer.MarketMarkdown(insights),
		renderer.AdviceMarkdown(advice),
	}, "\n"))
	return subcommands.ExitSuccess
}
