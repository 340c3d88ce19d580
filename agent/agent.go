// Package agent implements an interactive assistant: a facilitator model
// answering the user with the help of experts, each expert being another
// model with its own tools.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Render formats the facilitator's markdown answers, they are printed as is when nil.
	Render func(string) string
}

// New creates a new Agent whose facilitator, running model, delegates to experts.
//
// w receives the agent's output (e.g., os.Stdout), and r is read for user
// input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(model, experts...),
	}
}

// Start creates a chat for every expert and the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting expert %s: %w", e.Name, err)
		}
	}
	if err := a.Facilitator.Start(ctx, client); err != nil {
		return fmt.Errorf("starting facilitator: %w", err)
	}
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
// prompts are answered first, as if the user had typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.session == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to fire assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		answer := text(content)
		if a.Render != nil {
			answer = a.Render(answer)
		}
		fmt.Fprintln(a.w, answer)
	}
}

// text concatenates the text parts of c.
func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
