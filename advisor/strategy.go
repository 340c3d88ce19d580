package advisor

import (
	"context"

	"github.com/etnz/minifire"
	"google.golang.org/genai"
)

const strategyPrompt = `Based on Japan's current national strategy (the "Honebuto" basic policy,
the "New Form of Capitalism" and related plans), identify the six sectors the government
currently prioritises (for instance semiconductors and DX, GX, defense and space, inbound
tourism, asset management, AI).

For each sector, select 5 to 10 listed Japanese companies investors should watch.

Answer in Japanese with a JSON object only:
{"sectors": [{"id": 1, "name": "...", "description": "...",
  "stocks": [{"code": "securities code", "name": "...", "reason": "why in this sector"}]}]}`

// NationalStrategy returns the sectors put forward by the national strategy
// and their key stocks, grounded with Google Search.
func (c *Client) NationalStrategy(ctx context.Context) minifire.NationalStrategy {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	var s minifire.NationalStrategy
	if err := c.generate(ctx, strategyPrompt, config, &s, "$"); err != nil {
		c.fallback("national strategy", err)
		return FallbackNationalStrategy()
	}
	if s.Sectors == nil {
		s.Sectors = []minifire.StrategySector{}
	}
	for i := range s.Sectors {
		if s.Sectors[i].ID == 0 {
			s.Sectors[i].ID = i + 1
		}
	}
	return s
}

// FallbackNationalStrategy is a static selection of the strategy sectors.
func FallbackNationalStrategy() minifire.NationalStrategy {
	return minifire.NationalStrategy{Sectors: []minifire.StrategySector{
		{
			ID: 1, Name: "半導体・DX", Description: "デジタル産業基盤の強化",
			Stocks: []minifire.StrategyStock{
				{Code: "8035", Name: "東京エレクトロン", Reason: "製造装置世界シェア上位"},
				{Code: "6146", Name: "ディスコ", Reason: "精密加工装置で高シェア"},
				{Code: "4063", Name: "信越化学工業", Reason: "シリコンウエハ世界首位"},
			},
		},
		{
			ID: 2, Name: "GX (脱炭素)", Description: "クリーンエネルギー戦略",
			Stocks: []minifire.StrategyStock{
				{Code: "7203", Name: "トヨタ自動車", Reason: "EV/HV全方位戦略"},
				{Code: "6501", Name: "日立製作所", Reason: "送配電・再エネ事業"},
			},
		},
		{
			ID: 3, Name: "防衛・宇宙", Description: "安全保障と宇宙開発",
			Stocks: []minifire.StrategyStock{
				{Code: "7011", Name: "三菱重工業", Reason: "防衛・H3ロケット主導"},
				{Code: "7013", Name: "IHI", Reason: "航空宇宙エンジン"},
			},
		},
		{
			ID: 4, Name: "インバウンド", Description: "観光立国の推進",
			Stocks: []minifire.StrategyStock{
				{Code: "9020", Name: "JR東日本", Reason: "鉄道需要回復"},
				{Code: "4661", Name: "OLC", Reason: "ディズニーリゾート運営"},
			},
		},
		{
			ID: 5, Name: "AI・ロボティクス", Description: "生産性向上と人手不足解消",
			Stocks: []minifire.StrategyStock{
				{Code: "9984", Name: "ソフトバンクG", Reason: "AI投資世界的リーダー"},
				{Code: "6301", Name: "コマツ", Reason: "建機自律運転"},
			},
		},
		{
			ID: 6, Name: "金融・資産運用", Description: "資産運用立国とPBR改革",
			Stocks: []minifire.StrategyStock{
				{Code: "8306", Name: "三菱UFJ", Reason: "金利上昇メリット"},
				{Code: "8316", Name: "三井住友FG", Reason: "総合金融力"},
			},
		},
	}}
}
