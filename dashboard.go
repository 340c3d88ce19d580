package minifire

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/minifire/date"
	"github.com/google/uuid"
)

// AssetType classifies a holding.
type AssetType string

const (
	Cash   AssetType = "CASH"
	Stock  AssetType = "STOCK"
	Bond   AssetType = "BOND"
	Crypto AssetType = "CRYPTO"
)

// AssetTypes lists the asset types in display order.
var AssetTypes = []AssetType{Cash, Stock, Bond, Crypto}

// Asset is a position of the portfolio, valued in yen.
type Asset struct {
	ID    string    `json:"id" yaml:"id"`
	Type  AssetType `json:"type" yaml:"type"`
	Name  string    `json:"name" yaml:"name"`
	Value float64   `json:"value" yaml:"value"`
}

// Expense is a spending of the current month.
type Expense struct {
	ID       string    `json:"id" yaml:"id"`
	Category string    `json:"category" yaml:"category"`
	Amount   float64   `json:"amount" yaml:"amount"`
	Date     date.Date `json:"date" yaml:"date"`
}

// ExpenseCategories are the categories offered when logging an expense.
var ExpenseCategories = []string{"家賃", "食費", "光熱費", "交際・娯楽", "交通費", "通信費", "その他"}

// HustleStatus is the progress of a side job.
type HustleStatus string

const (
	HustleNew        HustleStatus = "NEW"
	HustleApplied    HustleStatus = "APPLIED"
	HustleInProgress HustleStatus = "IN_PROGRESS"
	HustleCompleted  HustleStatus = "COMPLETED"
)

// SideHustle is a freelance job that brings extra income.
type SideHustle struct {
	ID             string       `json:"id" yaml:"id"`
	Title          string       `json:"title" yaml:"title"`
	Platform       string       `json:"platform" yaml:"platform"`
	EstimatedHours float64      `json:"estimatedHours" yaml:"estimatedHours"` // per week
	HourlyRate     float64      `json:"hourlyRate" yaml:"hourlyRate"`
	Status         HustleStatus `json:"status" yaml:"status"`
	Skills         []string     `json:"skills" yaml:"skills"`
}

// MonthlyIncome returns the income of the hustle over a four weeks month.
func (h SideHustle) MonthlyIncome() Money { return Yen(h.HourlyRate * h.EstimatedHours * 4) }

var (
	ErrEmptyCategory = errors.New("expense category is required")
	ErrInvalidAmount = errors.New("expense amount must be positive")
)

// Dashboard is the user's financial situation: income, goal, holdings,
// this month's expenses and side jobs.
//
// A Dashboard lives for a single run, expenses added to it are not saved.
type Dashboard struct {
	MonthlyIncome        float64      `json:"monthlyIncome" yaml:"monthlyIncome"`
	TargetAssets         float64      `json:"targetAssets" yaml:"targetAssets"`
	MonthlySavingsTarget float64      `json:"monthlySavingsTarget" yaml:"monthlySavingsTarget"`
	Assets               []Asset      `json:"assets" yaml:"assets"`
	Expenses             []Expense    `json:"expenses" yaml:"expenses"`
	Hustles              []SideHustle `json:"hustles" yaml:"hustles"`
}

// Profile returns the projection input: current assets are the sum of all assets.
func (d *Dashboard) Profile() Profile {
	return Profile{
		MonthlyIncome:        d.MonthlyIncome,
		CurrentAssets:        d.TotalAssets().AsFloat(),
		TargetAssets:         d.TargetAssets,
		MonthlySavingsTarget: d.MonthlySavingsTarget,
	}
}

// TotalAssets returns the sum of all asset values.
func (d *Dashboard) TotalAssets() Money {
	total := Yen(0)
	for _, a := range d.Assets {
		total = total.Add(Yen(a.Value))
	}
	return total
}

// TotalExpenses returns the sum of all expenses.
func (d *Dashboard) TotalExpenses() Money {
	total := Yen(0)
	for _, e := range d.Expenses {
		total = total.Add(Yen(e.Amount))
	}
	return total
}

// SavingsRate returns the share of the income left after expenses, never below zero.
func (d *Dashboard) SavingsRate() Percent {
	income := Yen(d.MonthlyIncome)
	rate := income.Sub(d.TotalExpenses()).Ratio(income)
	return max(rate, 0)
}

// CategoryTotal is the amount spent in a category.
type CategoryTotal struct {
	Category string
	Amount   Money
	Share    Percent // of the total expenses
}

// ExpensesByCategory sums expenses per category, in order of first appearance.
func (d *Dashboard) ExpensesByCategory() []CategoryTotal {
	var res []CategoryTotal
	for _, e := range d.Expenses {
		i := slices.IndexFunc(res, func(c CategoryTotal) bool { return c.Category == e.Category })
		if i < 0 {
			res = append(res, CategoryTotal{Category: e.Category, Amount: Yen(0)})
			i = len(res) - 1
		}
		res[i].Amount = res[i].Amount.Add(Yen(e.Amount))
	}
	total := d.TotalExpenses()
	for i := range res {
		res[i].Share = res[i].Amount.Ratio(total)
	}
	return res
}

// Allocation is the value held in an asset type.
type Allocation struct {
	Type  AssetType
	Value Money
	Share Percent // of the total assets
}

// AllocationByType sums assets per type, skipping empty types.
func (d *Dashboard) AllocationByType() []Allocation {
	total := d.TotalAssets()
	var res []Allocation
	for _, t := range AssetTypes {
		v := Yen(0)
		for _, a := range d.Assets {
			if a.Type == t {
				v = v.Add(Yen(a.Value))
			}
		}
		if v.IsZero() {
			continue
		}
		res = append(res, Allocation{Type: t, Value: v, Share: v.Ratio(total)})
	}
	return res
}

// SideIncome returns the expected monthly income of all side hustles.
func (d *Dashboard) SideIncome() Money {
	total := Yen(0)
	for _, h := range d.Hustles {
		total = total.Add(h.MonthlyIncome())
	}
	return total
}

// AddExpense logs a new expense on top of the list and returns it.
func (d *Dashboard) AddExpense(category string, amount float64, on date.Date) (Expense, error) {
	if category == "" {
		return Expense{}, ErrEmptyCategory
	}
	if amount <= 0 {
		return Expense{}, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}
	if on.IsZero() {
		on = date.Today()
	}
	e := Expense{
		ID:       uuid.NewString(),
		Category: category,
		Amount:   amount,
		Date:     on,
	}
	d.Expenses = slices.Insert(d.Expenses, 0, e)
	return e, nil
}
