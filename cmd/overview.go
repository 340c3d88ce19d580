package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/date"
	"github.com/etnz/minifire/renderer"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// expenseFlag collects repeated category:amount[:date] values.
type expenseFlag []newExpense

type newExpense struct {
	category string
	amount   float64
	on       date.Date
}

func (e *expenseFlag) String() string {
	var s []string
	for _, x := range *e {
		s = append(s, fmt.Sprintf("%s:%v", x.category, x.amount))
	}
	return strings.Join(s, ",")
}

func (e *expenseFlag) Set(v string) error {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid expense %q, want category:amount[:date]", v)
	}
	amount, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("invalid expense amount %q: %w", parts[1], err)
	}
	x := newExpense{category: parts[0], amount: amount}
	if len(parts) == 3 {
		if x.on, err = date.Parse(parts[2]); err != nil {
			return fmt.Errorf("invalid expense date %q: %w", parts[2], err)
		}
	}
	*e = append(*e, x)
	return nil
}

type overviewCmd struct {
	add expenseFlag
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "show assets, allocation and expenses" }
func (*overviewCmd) Usage() string {
	return `fire overview [-add category:amount[:date]]...

Shows the dashboard: total assets, progress to the target, savings rate,
allocation and this month's expenses.

-add logs an expense first, today unless a date is given. Categories are
` + strings.Join(minifire.ExpenseCategories, ", ") + `.
Expenses are not saved.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.add, "add", "log an expense `category:amount[:date]`, can be repeated")
}

func (c *overviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, x := range c.add {
		e, err := d.AddExpense(x.category, x.amount, x.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding expense: %v\n", err)
			return subcommands.ExitUsageError
		}
		logrus.WithFields(logrus.Fields{"id": e.ID, "category": e.Category, "amount": e.Amount}).Debug("expense added")
	}
	printMarkdown(renderer.OverviewMarkdown(d))
	return subcommands.ExitSuccess
}

type hustleCmd struct{}

func (*hustleCmd) Name() string     { return "hustle" }
func (*hustleCmd) Synopsis() string { return "list side hustles and their income" }
func (*hustleCmd) Usage() string {
	return `fire hustle

Lists the side hustles of the dashboard, with the monthly income they bring
over four weeks.
`
}

func (*hustleCmd) SetFlags(*flag.FlagSet) {}

func (*hustleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HustlesMarkdown(d))
	return subcommands.ExitSuccess
}
