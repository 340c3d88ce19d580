package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/minifire"
	"google.golang.org/genai"
)

var adviceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"savingsTips":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"hustleRecommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"riskWarning":           {Type: genai.TypeString},
		"motivationalMessage":   {Type: genai.TypeString},
	},
}

// advicePrompt builds the consultation request for the user's situation.
func advicePrompt(p minifire.Profile, expenses []minifire.Expense, hustles []minifire.SideHustle) string {
	es := make([]string, 0, len(expenses))
	for _, e := range expenses {
		es = append(es, fmt.Sprintf("%s: %s", e.Category, minifire.Yen(e.Amount)))
	}
	hs := make([]string, 0, len(hustles))
	for _, h := range hustles {
		hs = append(hs, fmt.Sprintf("%s (%s/h)", h.Title, minifire.Yen(h.HourlyRate)))
	}

	return fmt.Sprintf(`You are "MiniFIRE Agent", a consultant specialised in FIRE (Financial Independence, Retire Early).
The user is a data analyst living in Tokyo with the following profile:
- monthly take-home income: %s
- current assets: %s
- target assets: %s

Constraint: the base salary is low but the user has strong Python/SQL skills.

Expenses this month: [%s]
Current side jobs: [%s]

Provide, in Japanese:
1. Three concrete cost-cutting measures based on the expenses.
2. Three side jobs suited to a data analyst, with estimated earnings.
3. A short risk warning related to market volatility.
4. A short encouraging message.`,
		minifire.Yen(p.MonthlyIncome), minifire.Yen(p.CurrentAssets), minifire.Yen(p.TargetAssets),
		strings.Join(es, ", "), strings.Join(hs, ", "))
}

// FireAdvice asks for savings tips and side job ideas for the user's situation.
func (c *Client) FireAdvice(ctx context.Context, p minifire.Profile, expenses []minifire.Expense, hustles []minifire.SideHustle) minifire.Advice {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   adviceSchema,
	}
	var a minifire.Advice
	if err := c.generate(ctx, advicePrompt(p, expenses, hustles), config, &a, "$"); err != nil {
		c.fallback("advice", err)
		return FallbackAdvice()
	}
	return a
}

// FallbackAdvice is shown when no advice could be generated.
func FallbackAdvice() minifire.Advice {
	return minifire.Advice{
		SavingsTips:           []string{"支出分析に失敗しました。"},
		HustleRecommendations: []string{"副業提案に失敗しました。"},
		RiskWarning:           "情報の取得に失敗しました。",
		MotivationalMessage:   "一歩ずつ進みましょう。",
	}
}
