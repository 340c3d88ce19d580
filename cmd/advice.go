package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/minifire/renderer"
	"github.com/google/subcommands"
)

type adviceCmd struct{}

func (*adviceCmd) Name() string     { return "advice" }
func (*adviceCmd) Synopsis() string { return "ask for savings tips and side hustle ideas" }
func (*adviceCmd) Usage() string {
	return `fire advice

Asks Gemini for savings tips based on this month's expenses, side hustle
ideas, a risk warning and some encouragement.
`
}

func (*adviceCmd) SetFlags(*flag.FlagSet) {}

func (*adviceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	a := newAdvisor(ctx).FireAdvice(ctx, d.Profile(), d.Expenses, d.Hustles)
	printMarkdown(renderer.AdviceMarkdown(a))
	return subcommands.ExitSuccess
}

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "show the main indexes and the news that moves them" }
func (*marketCmd) Usage() string {
	return `fire market

Asks Gemini, grounded with Google Search, for the latest moves of the main
indexes and their expected impact on the assets.
`
}

func (*marketCmd) SetFlags(*flag.FlagSet) {}

func (*marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MarketMarkdown(newAdvisor(ctx).MarketInsights(ctx)))
	return subcommands.ExitSuccess
}
