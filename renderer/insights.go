package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/minifire"
	md "github.com/nao1215/markdown"
)

// AdviceMarkdown renders the consultant's advice.
func AdviceMarkdown(a minifire.Advice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FIRE Advice")
	if len(a.SavingsTips) > 0 {
		doc.H2("Savings Tips")
		doc.BulletList(a.SavingsTips...)
	}
	if len(a.HustleRecommendations) > 0 {
		doc.H2("Side Hustle Ideas")
		doc.BulletList(a.HustleRecommendations...)
	}
	if a.RiskWarning != "" {
		doc.H2("Risk")
		doc.Blockquote(a.RiskWarning)
	}
	if a.MotivationalMessage != "" {
		doc.PlainText(md.Italic(a.MotivationalMessage))
	}
	return doc.String()
}

var sentimentLabels = map[minifire.Sentiment]string{
	minifire.Positive: "▲ positive",
	minifire.Negative: "▼ negative",
	minifire.Neutral:  "■ neutral",
}

// MarketMarkdown renders the market insights, one section per index.
func MarketMarkdown(insights []minifire.MarketInsight) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Insights")
	if len(insights) == 0 {
		doc.PlainText("No market data.")
		return doc.String()
	}
	for _, in := range insights {
		doc.H2(in.IndexName)
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignLeft},
			Header:    []string{"Value", "Change", "Impact on Assets"},
			Rows:      [][]string{{in.CurrentValue, in.ChangePercent, sentimentLabels[in.Sentiment]}},
		})
		if in.ImpactSummary != "" {
			doc.PlainText(in.ImpactSummary)
		}
		if in.NewsTitle != "" {
			news := in.NewsTitle
			if in.NewsURL != "" {
				news = md.Link(in.NewsTitle, in.NewsURL)
			}
			doc.PlainText("News: " + news)
		}
	}
	return doc.String()
}

// StrategyMarkdown lists the national strategy sectors.
func StrategyMarkdown(s minifire.NationalStrategy) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("National Strategy")
	if len(s.Sectors) == 0 {
		doc.PlainText("No sector found.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Sector", "Description", "Stocks"},
	}
	for _, sec := range s.Sectors {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(sec.ID),
			sec.Name,
			sec.Description,
			strconv.Itoa(len(sec.Stocks)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// SectorMarkdown lists the key stocks of a sector.
func SectorMarkdown(sec minifire.StrategySector) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(sec.Name)
	if sec.Description != "" {
		doc.PlainText(sec.Description)
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Code", "Name", "Reason"},
	}
	for _, st := range sec.Stocks {
		table.Rows = append(table.Rows, []string{st.Code, st.Name, st.Reason})
	}
	doc.Table(table)
	return doc.String()
}

// StockMarkdown renders a stock chart, its history, and the news of the
// selected point. An out of range selection selects the latest point.
func StockMarkdown(s minifire.StockDetail, r minifire.TimeRange, selected int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", s.Name, s.Code))
	doc.PlainText(fmt.Sprintf("Current price: %s, %s over %s.",
		md.Bold(minifire.Yen(s.CurrentPrice).String()), s.Change().SignedString(), r))
	if s.Description != "" {
		doc.PlainText(s.Description)
	}
	if len(s.History) == 0 {
		return doc.String()
	}

	low := s.History[0].Price
	chart := Chart{Unit: func(v float64) string { return fmt.Sprintf("%.0f", v) }}
	for _, p := range s.History {
		low = min(low, p.Price)
		chart.Values = append(chart.Values, p.Price)
		chart.Labels = append(chart.Labels, p.Date)
	}
	// start the axis a little below the lowest price so that moves stay visible.
	chart.Base = low * 0.98
	doc.PlainText("```\n" + chart.String() + "```")

	if selected < 0 || selected >= len(s.History) {
		selected = len(s.History) - 1
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"#", "Date", "Price", "News"},
	}
	for i, p := range s.History {
		idx := strconv.Itoa(i)
		if i == selected {
			idx = md.Bold(idx)
		}
		table.Rows = append(table.Rows, []string{idx, p.Date, fmt.Sprintf("%.0f", p.Price), p.NewsTitle})
	}
	doc.Table(table)

	p := s.History[selected]
	doc.H2(fmt.Sprintf("News on %s", p.Date))
	if p.NewsTitle == "" {
		doc.PlainText("No news for this point.")
		return doc.String()
	}
	title := p.NewsTitle
	if p.NewsURL != "" {
		title = md.Link(p.NewsTitle, p.NewsURL)
	}
	doc.PlainText(md.Bold(title))
	if p.NewsSummary != "" {
		doc.PlainText(p.NewsSummary)
	}
	return doc.String()
}
