package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/minifire"
	md "github.com/nao1215/markdown"
)

// man labels yen amounts in units of ten thousands.
func man(v float64) string { return minifire.Yen(v).Man() }

// ProjectionMarkdown renders a simulation: when the target is reached, the
// passive income at the callout year, the chart and the yearly figures.
func ProjectionMarkdown(r *minifire.SimulationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FIRE Simulation")
	if r.ReachesTarget {
		doc.PlainText(fmt.Sprintf("Target %s reached in %s.", r.Target(), md.Bold(fmt.Sprintf("%.1f years", r.YearsToTarget))))
	} else {
		doc.PlainText(fmt.Sprintf("Target %s reached in %s.", r.Target(), md.Bold(fmt.Sprintf("more than %g years", r.HorizonYears()))))
	}
	if !r.PassiveIncome.IsZero() {
		doc.PlainText(fmt.Sprintf("Passive income after %g years: %s per month (%g%% rule).",
			r.CalloutYear, md.Bold(r.PassiveIncome.String()), minifire.SafeWithdrawalRate*100))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Current assets", minifire.Yen(r.Profile.CurrentAssets).String()},
			{"Target assets", r.Target().String()},
			{"Annual return", minifire.Percent(r.Scenario.AnnualReturn).String()},
			{"Monthly savings", minifire.Yen(r.Scenario.MonthlySavings).String()},
			{"Horizon", fmt.Sprintf("%g years", r.HorizonYears())},
		},
	})

	yearly := r.Projection.Yearly()
	if len(yearly) == 0 {
		return doc.String()
	}

	doc.H2("Growth")
	chart := Chart{Reference: r.Profile.TargetAssets, Unit: man}
	for _, pt := range yearly {
		chart.Values = append(chart.Values, float64(pt.TotalAssets))
		chart.Labels = append(chart.Labels, fmt.Sprintf("%gy", pt.Year))
	}
	doc.PlainText("```\n" + chart.String() + "```")
	if r.PlateauMonth >= 0 {
		doc.PlainText(fmt.Sprintf("Growth stops at month %d, once assets reach %g times the target.",
			r.PlateauMonth, minifire.PlateauFactor))
	}

	doc.H2("Yearly Projection")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Year", "Total Assets", "Passive Income / Month", "Target"},
	}
	for _, pt := range yearly {
		reached := ""
		if float64(pt.TotalAssets) >= r.Profile.TargetAssets {
			reached = "✓"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%g", pt.Year),
			minifire.Yen(pt.TotalAssets).String(),
			minifire.Yen(pt.PassiveIncomeMonthly).String(),
			reached,
		})
	}
	doc.Table(table)

	return doc.String()
}
