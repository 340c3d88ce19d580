package advisor

import (
	"context"

	"github.com/etnz/minifire"
	"google.golang.org/genai"
)

const marketPrompt = `Look up today's (Japan time) moves of the Nikkei 225, the S&P 500 and the
MSCI All Country World Index ("All-Country" index funds), and the main news behind them.
For an investor aiming at FIRE, analyse how each piece of news affects long term asset building.

Answer in Japanese with a JSON array only, one object per index with the fields:
indexName, currentValue, changePercent, sentiment (one of "positive", "negative", "neutral"),
impactSummary, newsTitle, newsUrl.`

// MarketInsights returns the latest moves of the main indexes with their news,
// grounded with Google Search.
func (c *Client) MarketInsights(ctx context.Context) []minifire.MarketInsight {
	// Search grounding cannot be combined with a response schema, the JSON is decoded from text.
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	var insights []minifire.MarketInsight
	if err := c.generate(ctx, marketPrompt, config, &insights, "$", "$.insights"); err != nil {
		c.fallback("market insights", err)
		return FallbackMarketInsights()
	}
	for i := range insights {
		switch insights[i].Sentiment {
		case minifire.Positive, minifire.Negative, minifire.Neutral:
		default:
			insights[i].Sentiment = minifire.Neutral
		}
	}
	return insights
}

// FallbackMarketInsights is shown when the market cannot be queried.
func FallbackMarketInsights() []minifire.MarketInsight {
	return []minifire.MarketInsight{{
		IndexName:     "日経平均",
		CurrentValue:  "取得失敗",
		ChangePercent: "0%",
		Sentiment:     minifire.Neutral,
		ImpactSummary: "マーケット情報の取得中にエラーが発生しました。",
		NewsTitle:     "最新ニュースを確認中...",
		NewsURL:       "https://www.nikkei.com",
	}}
}
