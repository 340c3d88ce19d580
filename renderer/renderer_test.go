package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/minifire"
)

// assertContains fails for each of want that got does not contain.
func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func assertNotContains(t *testing.T, got string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(got, w) {
			t.Errorf("output contains %q:\n%s", w, got)
		}
	}
}

func simulate(t *testing.T, p minifire.Profile, s minifire.Scenario) string {
	t.Helper()
	r, err := minifire.NewSimulationReport(p, s)
	if err != nil {
		t.Fatalf("NewSimulationReport() error: %v", err)
	}
	return ProjectionMarkdown(r)
}

func TestProjectionMarkdown(t *testing.T) {
	p := minifire.Profile{CurrentAssets: 1_000_000, TargetAssets: 30_000_000}
	got := simulate(t, p, minifire.DefaultScenario(p))

	assertContains(t, got,
		"# FIRE Simulation",
		"Target ¥30,000,000 reached in **more than 15 years**.",
		"Passive income after 7 years:",
		"¥1,000,000",
		"4.5%",
		"¥40,000",
		"```",
		"3000万", // reference line label
		"0y",
		"15y",
		"## Yearly Projection",
	)
	assertNotContains(t, got, "✓", "Growth stops")
}

func TestProjectionMarkdown_Reached(t *testing.T) {
	p := minifire.Profile{CurrentAssets: 29_000_000, TargetAssets: 30_000_000}
	got := simulate(t, p, minifire.DefaultScenario(p))

	assertContains(t, got, "Target ¥30,000,000 reached in **", " years**.", "✓", "Growth stops at month")
	assertNotContains(t, got, "more than")
}

func TestProjectionMarkdown_ShortHorizon(t *testing.T) {
	p := minifire.Profile{CurrentAssets: 1_000_000, TargetAssets: 30_000_000}
	s := minifire.DefaultScenario(p)
	s.HorizonMonths = 24
	got := simulate(t, p, s)

	// the callout year is beyond a two years horizon.
	assertContains(t, got, "more than 2 years", "2y")
	assertNotContains(t, got, "Passive income after")
}

func TestOverviewMarkdown(t *testing.T) {
	got := OverviewMarkdown(minifire.DefaultDashboard())
	assertContains(t, got,
		"# Dashboard",
		"¥3,000,000",
		"¥160,000",
		"¥113,000",
		"29.4%",
		"¥270,000",
		"## Allocation",
		"STOCK",
		"家賃",
		"### By Category",
	)
}

func TestOverviewMarkdown_Empty(t *testing.T) {
	got := OverviewMarkdown(&minifire.Dashboard{})
	assertContains(t, got, "No expense logged this month.")
	assertNotContains(t, got, "## Allocation", "## Assets")
}

func TestHustlesMarkdown(t *testing.T) {
	got := HustlesMarkdown(minifire.DefaultDashboard())
	assertContains(t, got, "SQL ダッシュボード構築", "¥200,000", "¥270,000", "Python, Selenium")

	got = HustlesMarkdown(&minifire.Dashboard{})
	assertContains(t, got, "No side hustle yet.")
}

func TestAdviceMarkdown(t *testing.T) {
	got := AdviceMarkdown(minifire.Advice{
		SavingsTips:           []string{"格安SIMに変更"},
		HustleRecommendations: []string{"データ分析の受託"},
		RiskWarning:           "為替変動に注意",
		MotivationalMessage:   "継続は力なり",
	})
	assertContains(t, got, "## Savings Tips", "格安SIMに変更", "## Side Hustle Ideas", "データ分析の受託", "為替変動に注意", "継続は力なり")

	got = AdviceMarkdown(minifire.Advice{SavingsTips: []string{"a"}})
	assertNotContains(t, got, "## Risk", "## Side Hustle Ideas")
}

func TestMarketMarkdown(t *testing.T) {
	got := MarketMarkdown([]minifire.MarketInsight{{
		IndexName:     "日経平均",
		CurrentValue:  "38,000",
		ChangePercent: "+1.2%",
		Sentiment:     minifire.Positive,
		ImpactSummary: "輸出株が上昇",
		NewsTitle:     "日経平均反発",
		NewsURL:       "https://example.com/a",
	}})
	assertContains(t, got, "## 日経平均", "38,000", "+1.2%", "▲ positive", "輸出株が上昇", "[日経平均反発](https://example.com/a)")

	assertContains(t, MarketMarkdown(nil), "No market data.")
}

func TestStrategyMarkdown(t *testing.T) {
	s := minifire.NationalStrategy{Sectors: []minifire.StrategySector{{
		ID: 3, Name: "防衛・宇宙", Description: "安全保障と宇宙開発",
		Stocks: []minifire.StrategyStock{{Code: "7011", Name: "三菱重工業", Reason: "防衛・H3ロケット主導"}},
	}}}
	assertContains(t, StrategyMarkdown(s), "防衛・宇宙", "安全保障と宇宙開発")
	assertContains(t, SectorMarkdown(s.Sectors[0]), "# 防衛・宇宙", "7011", "三菱重工業", "防衛・H3ロケット主導")
	assertContains(t, StrategyMarkdown(minifire.NationalStrategy{}), "No sector found.")
}

func TestStockMarkdown(t *testing.T) {
	s := minifire.StockDetail{
		Code:         "7203",
		Name:         "トヨタ自動車",
		CurrentPrice: 3000,
		History: []minifire.StockHistoryPoint{
			{Date: "2025/01", Price: 2800, NewsTitle: "新型EV発表", NewsSummary: "期待先行"},
			{Date: "2025/02", Price: 2900},
			{Date: "2025/03", Price: 3000, NewsTitle: "好決算", NewsURL: "https://example.com/n"},
		},
	}

	got := StockMarkdown(s, minifire.Range1Y, -1)
	assertContains(t, got, "# トヨタ自動車 (7203)", "¥3,000", "+7.1%", "1Y", "2025/01", "2025/03",
		"## News on 2025/03", "[好決算](https://example.com/n)")

	got = StockMarkdown(s, minifire.Range1Y, 0)
	assertContains(t, got, "## News on 2025/01", "新型EV発表", "期待先行")

	got = StockMarkdown(s, minifire.Range1Y, 1)
	assertContains(t, got, "No news for this point.")
}
