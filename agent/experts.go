package agent

import (
	"context"
	"fmt"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/renderer"
	"google.golang.org/genai"
)

// DefaultModel runs the facilitator and the experts when no model is given.
const DefaultModel = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func orDefault(model string) string {
	if model == "" {
		return DefaultModel
	}
	return model
}

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: orDefault(model),
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.
			The user is working toward FIRE (Financial Independence, Retire Early) and lives in Japan,
			amounts are in yen.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in the user's language, in markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert of the markets, grounded with Google Search.
func NewTrader(model string) *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader of the Japanese and world markets,
		aware of the latest news about indexes, companies and the government's growth strategy.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: orDefault(model),
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in trading, you can search and find about anything related to
			markets, indexes, companies and funds, in Japan in particular. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
			`),
		},
	}
}

// NewPlanner returns the expert of the user's dashboard, able to run projections on it.
func NewPlanner(model string, d *minifire.Dashboard) *Expert {
	lib := []Function{Overview(d), Hustles(d), Simulate(d)}
	return &Expert{
		Name: "Planner",
		Description: `This is the financial Planner. It knows the user's dashboard: income, assets,
		expenses of the month, side hustles and FIRE target.
		It can project the growth of the assets for any annual return and monthly savings.`,
		ModelName: orDefault(model),
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a financial planner in charge of the user's path to financial independence.
			You are part of a team of experts, yours is everything about the user's dashboard and projections.
			They might ask you questions with approximate language, figure out what they meant.

			Use the available tools to get information about
			  - the user's assets, income and expenses
			  - the side hustles and their income
			  - when the target is reached for a given annual return and monthly savings
			`),
		},
		Library: NewLibrary(lib),
	}
}

// Overview renders the dashboard.
func Overview(d *minifire.Dashboard) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Overview",
			Description: "Overview returns the user's total assets, allocation, income and this month's expenses.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the dashboard.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Overview", renderer.OverviewMarkdown(d))
		},
	}
}

// Hustles renders the side hustles.
func Hustles(d *minifire.Dashboard) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Hustles",
			Description: "Hustles lists the user's side jobs, their status and the monthly income they bring.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the side hustles.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Hustles", renderer.HustlesMarkdown(d))
		},
	}
}

// Simulate projects the dashboard's assets.
func Simulate(d *minifire.Dashboard) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Simulate",
			Description: `Simulate projects the user's assets month by month, with compound growth and
			monthly savings, and tells when the FIRE target is reached and the passive income after 7 years.
			Every parameter is optional and defaults to the user's current plan.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"annualReturn": {
						Type:        genai.TypeNumber,
						Description: fmt.Sprintf("Expected annual return in percent, default %v.", minifire.DefaultAnnualReturn),
					},
					"monthlySavings": {
						Type:        genai.TypeNumber,
						Description: "Amount saved and invested every month, in yen.",
					},
					"horizonMonths": {
						Type:        genai.TypeInteger,
						Description: fmt.Sprintf("Length of the projection in months, default %d.", minifire.DefaultHorizonMonths),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the projection with a yearly table.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p := d.Profile()
			s, err := parseScenario(p, args)
			if err != nil {
				return errorResponse(id, "Simulate", err)
			}
			r, err := minifire.NewSimulationReport(p, s)
			if err != nil {
				return errorResponse(id, "Simulate", err)
			}
			return outputResponse(id, "Simulate", renderer.ProjectionMarkdown(r))
		},
	}
}

// parseScenario reads the Simulate arguments over the default scenario of p.
func parseScenario(p minifire.Profile, args map[string]any) (minifire.Scenario, error) {
	s := minifire.DefaultScenario(p)
	var err error
	if s.AnnualReturn, err = number(args, "annualReturn", s.AnnualReturn); err != nil {
		return s, err
	}
	if s.MonthlySavings, err = number(args, "monthlySavings", s.MonthlySavings); err != nil {
		return s, err
	}
	months, err := number(args, "horizonMonths", float64(s.HorizonMonths))
	if err != nil {
		return s, err
	}
	if months != float64(int(months)) {
		return s, fmt.Errorf("argument 'horizonMonths' must be a whole number of months, got %v", months)
	}
	s.HorizonMonths = int(months)
	return s, nil
}

// number returns the numeric argument name, or def when it is missing.
func number(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return def, fmt.Errorf("argument '%s' is not a number as expected but %T", name, v)
}
