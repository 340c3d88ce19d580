package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/minifire/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `fire topic [-list] [<topic>...]

Show documentation for the given topics, '*' for all of them. Without
topic, show the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "print the topic names and titles only")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, t := range topics {
			title, err := docs.Title(t)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("%-10s %s\n", t, title)
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
