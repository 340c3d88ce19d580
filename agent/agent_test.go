package agent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/minifire"
	"google.golang.org/genai"
)

// scriptedSession answers with the next scripted response and records what it was sent.
type scriptedSession struct {
	responses []*genai.Content
	sent      [][]*genai.Part
}

func (s *scriptedSession) Send(_ context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	s.sent = append(s.sent, parts)
	if len(s.responses) == 0 {
		return nil, errors.New("no more responses")
	}
	c := s.responses[0]
	s.responses = s.responses[1:]
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: c}}}, nil
}

func textContent(s string) *genai.Content { return genai.NewContentFromText(s, genai.RoleModel) }

func callContent(name string, args map[string]any) *genai.Content {
	return genai.NewContentFromFunctionCall(name, args, genai.RoleModel)
}

func TestExpert_AskWithFunctionCall(t *testing.T) {
	d := minifire.DefaultDashboard()
	session := &scriptedSession{responses: []*genai.Content{
		callContent("Simulate", map[string]any{"annualReturn": 5.0, "monthlySavings": 60000.0}),
		textContent("You reach your target in about 14 years."),
	}}
	e := NewPlanner("", d)
	e.session = session

	got, err := e.Ask(context.Background(), &genai.Part{Text: "when do I retire?"})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if text(got) != "You reach your target in about 14 years." {
		t.Errorf("Ask() = %q", text(got))
	}
	if len(session.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(session.sent))
	}
	resp := session.sent[1][0].FunctionResponse
	if resp == nil || resp.Name != "Simulate" {
		t.Fatalf("second message is not the Simulate response: %+v", session.sent[1][0])
	}
	out, _ := resp.Response["output"].(string)
	for _, want := range []string{"# FIRE Simulation", "5.0%", "¥60,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Simulate output does not contain %q:\n%s", want, out)
		}
	}
}

func TestExpert_AskWithoutLibrary(t *testing.T) {
	e := NewTrader("")
	e.session = &scriptedSession{responses: []*genai.Content{callContent("Search", nil)}}
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "news?"}); err == nil {
		t.Error("Ask() succeeded without a library to answer the function call")
	}
}

func TestExpert_NotStarted(t *testing.T) {
	if _, err := NewTrader("").Ask(context.Background(), &genai.Part{Text: "news?"}); err == nil {
		t.Error("Ask() succeeded on an expert that was not started")
	}
}

func TestExpert_Call(t *testing.T) {
	e := NewTrader("")
	e.session = &scriptedSession{responses: []*genai.Content{textContent("Nikkei is up.")}}

	resp := e.Call(context.Background(), "id-1", map[string]any{"question": "market?"})
	if resp.ID != "id-1" || resp.Name != "Trader" || resp.Response["output"] != "Nikkei is up." {
		t.Errorf("Call() = %+v", resp)
	}

	// a wrong argument is reported to the model, not a panic.
	resp = e.Call(context.Background(), "id-2", map[string]any{"question": 3})
	if _, ok := resp.Response["error"].(string); !ok {
		t.Errorf("Call() with invalid args = %+v, want an error", resp)
	}
}

func TestLibrary(t *testing.T) {
	d := minifire.DefaultDashboard()
	lib := NewLibrary([]Function{Overview(d), Hustles(d), Simulate(d)})
	ctx := context.Background()

	resp := lib(ctx, &genai.FunctionCall{ID: "1", Name: "Hustles"})
	if out, _ := resp.Response["output"].(string); !strings.Contains(out, "# Side Hustles") {
		t.Errorf("Hustles output = %q", out)
	}
	resp = lib(ctx, &genai.FunctionCall{ID: "2", Name: "Overview"})
	if out, _ := resp.Response["output"].(string); !strings.Contains(out, "# Dashboard") {
		t.Errorf("Overview output = %q", out)
	}
	resp = lib(ctx, &genai.FunctionCall{ID: "3", Name: "Delete"})
	if resp.ID != "3" || resp.Response["error"] != "unknown function Delete" {
		t.Errorf("unknown function response = %+v", resp)
	}
	resp = lib(ctx, &genai.FunctionCall{ID: "4", Name: "Simulate", Args: map[string]any{"monthlySavings": -1.0}})
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, "monthly savings must not be negative") {
		t.Errorf("invalid simulation response = %+v", resp)
	}
}

func TestParseScenario(t *testing.T) {
	p := minifire.Profile{CurrentAssets: 1_000_000, TargetAssets: 30_000_000, MonthlySavingsTarget: 50_000}
	tests := []struct {
		name    string
		args    map[string]any
		want    minifire.Scenario
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: minifire.Scenario{AnnualReturn: 4.5, MonthlySavings: 50_000, HorizonMonths: 180},
		},
		{
			name: "all set",
			args: map[string]any{"annualReturn": 7.0, "monthlySavings": 100_000.0, "horizonMonths": 240.0},
			want: minifire.Scenario{AnnualReturn: 7, MonthlySavings: 100_000, HorizonMonths: 240},
		},
		{
			name: "integers",
			args: map[string]any{"monthlySavings": 30_000, "horizonMonths": 12},
			want: minifire.Scenario{AnnualReturn: 4.5, MonthlySavings: 30_000, HorizonMonths: 12},
		},
		{name: "string", args: map[string]any{"annualReturn": "5%"}, wantErr: true},
		{name: "fractional months", args: map[string]any{"horizonMonths": 12.5}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScenario(p, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseScenario() = %+v, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScenario() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseScenario() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAgent_Run(t *testing.T) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader("how am I doing?\n\nbye\n"), "")
	a.Facilitator.session = &scriptedSession{responses: []*genai.Content{
		textContent("**Great**, keep going."),
		textContent("Your savings rate is 29.4%."),
	}}
	a.Render = strings.ToUpper

	if err := a.Run(context.Background(), nil, "hello"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Welcome to fire assist.", "assist> hello\n", "**GREAT**, KEEP GOING.", "YOUR SAVINGS RATE IS 29.4%."} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}
