package advisor

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/date"
	"google.golang.org/genai"
)

// fallbackBasePrice is the price synthetic histories oscillate around.
const fallbackBasePrice = 5000

// rangeInstruction describes the chart to generate for r, given today's date.
func rangeInstruction(r minifire.TimeRange, today string) string {
	switch r {
	case minifire.Range1D:
		return fmt.Sprintf("the intraday price today (%s) on the Tokyo market between 9:00 and 15:00, "+
			"dates formatted 'HH:MM', 6 points (9:00, 10:00, 11:00, 12:30, 14:00, 15:00); "+
			"stop at the last trading time if the session is not over", today)
	case minifire.Range1M:
		return fmt.Sprintf("the main daily prices over the month ending today (%s), dates formatted 'MM/DD', 10 points", today)
	case minifire.Range3M:
		return fmt.Sprintf("the weekly prices over the 3 months ending today (%s), dates formatted 'MM/DD', 12 points", today)
	default:
		return fmt.Sprintf("the monthly prices over the year ending today (%s), dates formatted 'YYYY/MM', 12 points", today)
	}
}

var stockSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"code":         {Type: genai.TypeString},
		"name":         {Type: genai.TypeString},
		"currentPrice": {Type: genai.TypeNumber},
		"description":  {Type: genai.TypeString},
		"history": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date":        {Type: genai.TypeString},
					"price":       {Type: genai.TypeNumber},
					"newsTitle":   {Type: genai.TypeString},
					"newsSummary": {Type: genai.TypeString},
					"newsUrl":     {Type: genai.TypeString},
				},
			},
		},
	},
}

// StockDetail returns the price history of a Japanese stock over r, each
// point annotated with the news that moved it.
func (c *Client) StockDetail(ctx context.Context, code, name string, r minifire.TimeRange) minifire.StockDetail {
	now := c.today()
	today := now.Format(date.DateFormat)
	prompt := fmt.Sprintf(`Generate the following about the Japanese stock %q (%s).
It is now %s in Japan.

1. The current price (approximate).
2. A short description of the company (about 30 characters, in Japanese).
3. %s.
   - Use realistic figures reflecting the actual trend.
   - The last point must be today (%s) or the latest trading day.
   - Attach to each point a real or plausible news headline explaining the move and a summary under 20 characters, in Japanese.`,
		name, code, now.Format("2006-01-02 15:04"), rangeInstruction(r, today), today)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   stockSchema,
	}
	var s minifire.StockDetail
	if err := c.generate(ctx, prompt, config, &s, "$"); err != nil {
		c.fallback(fmt.Sprintf("stock detail %s", code), err)
		return c.FallbackStockDetail(code, name, r)
	}
	if s.History == nil {
		s.History = []minifire.StockHistoryPoint{}
	}
	if s.Code == "" {
		s.Code = code
	}
	if s.Name == "" {
		s.Name = name
	}
	return s
}

// intradayHours are the times of the synthetic intraday points.
var intradayHours = []int{9, 10, 11, 12, 13, 15}

// FallbackStockDetail synthesizes a random history around a flat price.
func (c *Client) FallbackStockDetail(code, name string, r minifire.TimeRange) minifire.StockDetail {
	today := date.In(c.today())
	count := r.Points()
	history := make([]minifire.StockHistoryPoint, 0, count)

	for i := range count {
		var label string
		var price float64
		back := count - 1 - i // periods before today
		switch r {
		case minifire.Range1D:
			h := intradayHours[i%len(intradayHours)]
			minute := "00"
			if h == 12 {
				minute = "30"
			}
			label = fmt.Sprintf("%d:%s", h, minute)
			price = fallbackBasePrice + c.Rand.Float64()*100 - 50
		case minifire.Range1M:
			label = today.Add(-back * 3).Format(date.MonthDay)
			price = fallbackBasePrice + c.Rand.Float64()*500 - 250
		case minifire.Range3M:
			label = today.Add(-back * 7).Format(date.MonthDay)
			price = fallbackBasePrice + c.Rand.Float64()*500 - 250
		default:
			label = today.AddMonths(-back).Format(date.YearMonth)
			price = fallbackBasePrice + c.Rand.Float64()*500 - 250
		}
		history = append(history, minifire.StockHistoryPoint{
			Date:        label,
			Price:       math.Floor(price),
			NewsTitle:   "市場動向の影響",
			NewsSummary: "セクター全体の動きに連動。",
			NewsURL:     "https://www.google.com/search?q=" + url.QueryEscape(name),
		})
	}

	current := float64(fallbackBasePrice)
	if len(history) > 0 {
		current = history[len(history)-1].Price
	}
	return minifire.StockDetail{
		Code:         code,
		Name:         name,
		CurrentPrice: current,
		Description:  "データ取得に失敗しました（フォールバック表示中）。",
		History:      history,
	}
}
