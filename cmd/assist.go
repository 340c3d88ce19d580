package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/minifire/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }

func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }

func (*assistCmd) Usage() string {
	return `fire assist [<question>...]

Start an interactive session with the AI assistant. It knows the dashboard
and can run simulations. The arguments, if any, are the first question.
Type 'bye' to exit.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	m := model()
	a := agent.New(os.Stdout, os.Stdin, m, agent.NewPlanner(m, d), agent.NewTrader(m))
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
