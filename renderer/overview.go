package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/minifire"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders the dashboard: totals, allocation, holdings and
// this month's expenses.
func OverviewMarkdown(d *minifire.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Assets"), md.Bold(d.TotalAssets().String())},
		Rows: [][]string{
			{"Target Assets", minifire.Yen(d.TargetAssets).String()},
			{"Progress", d.TotalAssets().Ratio(minifire.Yen(d.TargetAssets)).String()},
			{"Monthly Income", minifire.Yen(d.MonthlyIncome).String()},
			{"Expenses This Month", d.TotalExpenses().String()},
			{"Savings Rate", d.SavingsRate().String()},
			{"Side Income", d.SideIncome().String()},
		},
	})

	if alloc := d.AllocationByType(); len(alloc) > 0 {
		doc.H2("Allocation")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Type", "Value", "Share"},
		}
		for _, a := range alloc {
			table.Rows = append(table.Rows, []string{string(a.Type), a.Value.String(), a.Share.String()})
		}
		doc.Table(table)
	}

	if len(d.Assets) > 0 {
		doc.H2("Assets")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Name", "Type", "Value"},
		}
		for _, a := range d.Assets {
			table.Rows = append(table.Rows, []string{a.Name, string(a.Type), minifire.Yen(a.Value).String()})
		}
		doc.Table(table)
	}

	doc.H2("Expenses")
	if len(d.Expenses) == 0 {
		doc.PlainText("No expense logged this month.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Category", "Amount"},
	}
	for _, e := range d.Expenses {
		table.Rows = append(table.Rows, []string{e.Date.String(), e.Category, minifire.Yen(e.Amount).String()})
	}
	doc.Table(table)

	doc.H3("By Category")
	byCat := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "Amount", "Share"},
	}
	for _, c := range d.ExpensesByCategory() {
		byCat.Rows = append(byCat.Rows, []string{c.Category, c.Amount.String(), c.Share.String()})
	}
	doc.Table(byCat)

	return doc.String()
}

// HustlesMarkdown renders the side jobs and the income they bring.
func HustlesMarkdown(d *minifire.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Side Hustles")
	if len(d.Hustles) == 0 {
		doc.PlainText("No side hustle yet.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Expected side income: %s per month.", md.Bold(d.SideIncome().String())))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Title", "Platform", "Hours / Week", "Rate", "Monthly", "Status", "Skills"},
	}
	for _, h := range d.Hustles {
		table.Rows = append(table.Rows, []string{
			h.Title,
			h.Platform,
			fmt.Sprintf("%g", h.EstimatedHours),
			minifire.Yen(h.HourlyRate).String(),
			h.MonthlyIncome().String(),
			string(h.Status),
			strings.Join(h.Skills, ", "),
		})
	}
	doc.Table(table)
	return doc.String()
}
