package advisor

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/etnz/minifire"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/genai"
)

// fakeGenerator answers every request with text, or fails with err.
type fakeGenerator struct {
	text string
	err  error

	// last request
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.config = model, config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

// newTestClient returns a client on g at a fixed time, with a captured log.
func newTestClient(g Generator) (*Client, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return &Client{
		Generator: g,
		Model:     "test-model",
		Log:       logger,
		Now:       func() time.Time { return time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC) }, // 10:00 in Tokyo
		Rand:      rand.New(rand.NewPCG(1, 2)),
	}, hook
}

func TestDecode(t *testing.T) {
	type obj struct {
		A int `json:"a"`
	}
	tests := []struct {
		name    string
		text    string
		paths   []string
		want    []obj
		wantErr bool
	}{
		{name: "plain", text: `[{"a":1}]`, want: []obj{{1}}},
		{name: "fenced", text: "Here you go:\n```json\n[{\"a\":2}]\n```\nEnjoy.", want: []obj{{2}}},
		{name: "wrapped", text: `{"items":[{"a":3}]}`, paths: []string{"$", "$.items"}, want: []obj{{3}}},
		{name: "not json", text: "sorry, I cannot help", wantErr: true},
		{name: "empty", text: "  ", wantErr: true},
		{name: "wrong shape", text: `{"a":1}`, paths: []string{"$", "$.items"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []obj
			err := decode(tt.text, &got, tt.paths...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("decode() = %v, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarketInsights(t *testing.T) {
	g := &fakeGenerator{text: "```json\n" + `[
		{"indexName": "日経平均", "currentValue": "38,000", "changePercent": "+1.2%", "sentiment": "positive",
		 "impactSummary": "円安で輸出株が上昇", "newsTitle": "日経平均反発", "newsUrl": "https://example.com/a"},
		{"indexName": "S&P 500", "currentValue": "5,100", "changePercent": "-0.3%", "sentiment": "bearish",
		 "impactSummary": "", "newsTitle": "", "newsUrl": ""}
	]` + "\n```"}
	c, _ := newTestClient(g)

	got := c.MarketInsights(context.Background())
	if len(got) != 2 {
		t.Fatalf("MarketInsights() = %v", got)
	}
	if got[0].Sentiment != minifire.Positive || got[0].CurrentValue != "38,000" {
		t.Errorf("first insight = %+v", got[0])
	}
	if got[1].Sentiment != minifire.Neutral {
		t.Errorf("unknown sentiment = %q, want neutral", got[1].Sentiment)
	}
	if g.model != "test-model" {
		t.Errorf("model = %q", g.model)
	}
	if len(g.config.Tools) != 1 || g.config.Tools[0].GoogleSearch == nil {
		t.Error("market insights are not grounded with Google Search")
	}
}

func TestMarketInsights_Fallback(t *testing.T) {
	c, hook := newTestClient(&fakeGenerator{err: errors.New("quota exceeded")})

	got := c.MarketInsights(context.Background())
	if diff := cmp.Diff(FallbackMarketInsights(), got); diff != "" {
		t.Errorf("MarketInsights() mismatch (-want +got):\n%s", diff)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("fallback was not logged as a warning: %v", entry)
	}
	if err, _ := entry.Data[logrus.ErrorKey].(error); err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("logged error = %v", entry.Data[logrus.ErrorKey])
	}
}

func TestNoGenerator(t *testing.T) {
	c := New(nil, "")
	c.Log, _ = test.NewNullLogger()
	if c.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", c.Model, DefaultModel)
	}
	ctx := context.Background()
	if got := c.FireAdvice(ctx, minifire.Profile{}, nil, nil); !cmp.Equal(got, FallbackAdvice()) {
		t.Errorf("FireAdvice() = %+v", got)
	}
	if got := c.NationalStrategy(ctx); len(got.Sectors) != 6 {
		t.Errorf("NationalStrategy() has %d sectors, want 6", len(got.Sectors))
	}
	if got := c.StockDetail(ctx, "7203", "トヨタ自動車", minifire.Range1M); len(got.History) != 10 {
		t.Errorf("StockDetail() has %d points, want 10", len(got.History))
	}
}

func TestNationalStrategy(t *testing.T) {
	c, _ := newTestClient(&fakeGenerator{text: `{"sectors": [
		{"name": "半導体", "description": "d", "stocks": [{"code": "8035", "name": "東京エレクトロン", "reason": "r"}]},
		{"id": 7, "name": "宇宙", "description": "d", "stocks": []}
	]}`})
	got := c.NationalStrategy(context.Background())
	if len(got.Sectors) != 2 {
		t.Fatalf("NationalStrategy() = %+v", got)
	}
	if got.Sectors[0].ID != 1 || got.Sectors[1].ID != 7 {
		t.Errorf("sector ids = %d, %d want 1, 7", got.Sectors[0].ID, got.Sectors[1].ID)
	}

	c, _ = newTestClient(&fakeGenerator{text: `{}`})
	got = c.NationalStrategy(context.Background())
	if got.Sectors == nil || len(got.Sectors) != 0 {
		t.Errorf("missing sectors = %#v, want an empty list", got.Sectors)
	}
}

func TestStockDetail(t *testing.T) {
	g := &fakeGenerator{text: `{"currentPrice": 2900, "description": "自動車大手",
		"history": [{"date": "2025/02", "price": 2800}, {"date": "2025/03", "price": 2900, "newsTitle": "好決算"}]}`}
	c, _ := newTestClient(g)

	got := c.StockDetail(context.Background(), "7203", "トヨタ自動車", minifire.Range1Y)
	if got.Code != "7203" || got.Name != "トヨタ自動車" {
		t.Errorf("StockDetail() did not default code and name: %+v", got)
	}
	if len(got.History) != 2 || got.History[1].NewsTitle != "好決算" {
		t.Errorf("History = %+v", got.History)
	}
	if g.config.ResponseMIMEType != "application/json" || g.config.ResponseSchema == nil {
		t.Error("stock detail is not schema constrained")
	}
	for _, want := range []string{"7203", "2025-03-10", "'YYYY/MM'"} {
		if !strings.Contains(g.prompt, want) {
			t.Errorf("prompt does not mention %q:\n%s", want, g.prompt)
		}
	}
}

func TestFallbackStockDetail(t *testing.T) {
	c, _ := newTestClient(nil)
	tests := []struct {
		r           minifire.TimeRange
		first, last string
		spread      float64
	}{
		{minifire.Range1D, "9:00", "15:00", 50},
		{minifire.Range1M, "02/11", "03/10", 250},
		{minifire.Range3M, "12/23", "03/10", 250},
		{minifire.Range1Y, "2024/04", "2025/03", 250},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			s := c.FallbackStockDetail("6501", "日立製作所", tt.r)
			if len(s.History) != tt.r.Points() {
				t.Fatalf("%d points, want %d", len(s.History), tt.r.Points())
			}
			if got := s.History[0].Date; got != tt.first {
				t.Errorf("first label = %q, want %q", got, tt.first)
			}
			if got := s.History[len(s.History)-1].Date; got != tt.last {
				t.Errorf("last label = %q, want %q", got, tt.last)
			}
			for _, p := range s.History {
				if p.Price < fallbackBasePrice-tt.spread || p.Price > fallbackBasePrice+tt.spread {
					t.Errorf("price %v out of range", p.Price)
				}
				if p.Price != float64(int64(p.Price)) {
					t.Errorf("price %v is not floored", p.Price)
				}
			}
			if s.CurrentPrice != s.History[len(s.History)-1].Price {
				t.Errorf("CurrentPrice = %v, want the last price", s.CurrentPrice)
			}
		})
	}

	s := c.FallbackStockDetail("6501", "日立製作所", minifire.Range1D)
	if got := s.History[3].Date; got != "12:30" {
		t.Errorf("fourth intraday label = %q, want 12:30", got)
	}
}

func TestFireAdvice(t *testing.T) {
	g := &fakeGenerator{text: `{"savingsTips": ["a", "b", "c"], "hustleRecommendations": ["x"],
		"riskWarning": "注意", "motivationalMessage": "頑張れ"}`}
	c, _ := newTestClient(g)

	d := minifire.DefaultDashboard()
	got := c.FireAdvice(context.Background(), d.Profile(), d.Expenses, d.Hustles)
	want := minifire.Advice{
		SavingsTips:           []string{"a", "b", "c"},
		HustleRecommendations: []string{"x"},
		RiskWarning:           "注意",
		MotivationalMessage:   "頑張れ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FireAdvice() mismatch (-want +got):\n%s", diff)
	}
	for _, s := range []string{"¥160,000", "¥3,000,000", "家賃: ¥55,000", "SQL ダッシュボード構築 (¥5,000/h)"} {
		if !strings.Contains(g.prompt, s) {
			t.Errorf("prompt does not mention %q", s)
		}
	}
}
