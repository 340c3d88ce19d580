package minifire

import "fmt"

// Advice is the AI consultant's answer about expenses and side jobs.
type Advice struct {
	SavingsTips           []string `json:"savingsTips"`
	HustleRecommendations []string `json:"hustleRecommendations"`
	RiskWarning           string   `json:"riskWarning,omitempty"`
	MotivationalMessage   string   `json:"motivationalMessage"`
}

// Sentiment is the expected effect of a piece of news on the user's assets.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// MarketInsight summarizes an index and the news that moves it.
type MarketInsight struct {
	IndexName     string    `json:"indexName"`
	CurrentValue  string    `json:"currentValue"`
	ChangePercent string    `json:"changePercent"`
	Sentiment     Sentiment `json:"sentiment"`
	ImpactSummary string    `json:"impactSummary"`
	NewsTitle     string    `json:"newsTitle"`
	NewsURL       string    `json:"newsUrl"`
}

// StrategyStock is a listed company related to a national strategy sector.
type StrategyStock struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// StrategySector is a sector the national strategy puts forward.
type StrategySector struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stocks      []StrategyStock `json:"stocks"`
}

// NationalStrategy lists the sectors promoted by the government's growth strategy.
type NationalStrategy struct {
	Sectors []StrategySector `json:"sectors"`
}

// Sector returns the sector with the given id.
func (s NationalStrategy) Sector(id int) (StrategySector, bool) {
	for _, sec := range s.Sectors {
		if sec.ID == id {
			return sec, true
		}
	}
	return StrategySector{}, false
}

// StockHistoryPoint is a price on a chart, with the news that explains it.
type StockHistoryPoint struct {
	Date        string  `json:"date"` // a label: HH:MM, MM/DD or YYYY/MM depending on the range.
	Price       float64 `json:"price"`
	NewsTitle   string  `json:"newsTitle,omitempty"`
	NewsSummary string  `json:"newsSummary,omitempty"`
	NewsURL     string  `json:"newsUrl,omitempty"`
}

// StockDetail is a stock price history over a TimeRange.
type StockDetail struct {
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	CurrentPrice float64             `json:"currentPrice"`
	Description  string              `json:"description"`
	History      []StockHistoryPoint `json:"history"`
}

// Change returns the relative change between the first and last point.
func (s StockDetail) Change() Percent {
	if len(s.History) < 2 || s.History[0].Price == 0 {
		return 0
	}
	first, last := s.History[0].Price, s.History[len(s.History)-1].Price
	return Percent((last - first) / first * 100)
}

// TimeRange is the period covered by a stock chart.
type TimeRange string

const (
	Range1D TimeRange = "1D"
	Range1M TimeRange = "1M"
	Range3M TimeRange = "3M"
	Range1Y TimeRange = "1Y"
)

// TimeRanges lists the available ranges, shortest first.
var TimeRanges = []TimeRange{Range1D, Range1M, Range3M, Range1Y}

// ParseTimeRange parses one of 1D, 1M, 3M or 1Y.
func ParseTimeRange(s string) (TimeRange, error) {
	for _, r := range TimeRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid time range %q, want one of %v", s, TimeRanges)
}

// String implements flag.Value.
func (r TimeRange) String() string { return string(r) }

// Set implements flag.Value.
func (r *TimeRange) Set(s string) error {
	v, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Points returns the number of points a chart of this range holds.
func (r TimeRange) Points() int {
	switch r {
	case Range1D:
		return 6
	case Range1M:
		return 10
	default:
		return 12
	}
}
