package minifire

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultAnnualReturn   = 4.5
	DefaultMonthlySavings = 40000
)

var (
	ErrNegativeTarget  = errors.New("target assets must not be negative")
	ErrNegativeAssets  = errors.New("current assets must not be negative")
	ErrNegativeSavings = errors.New("monthly savings must not be negative")
	ErrNegativeHorizon = errors.New("horizon must not be negative")
)

// Bounds describe the allowed values of a simulation knob and its increment.
type Bounds struct {
	Min, Max, Step float64
}

var (
	// ReturnRange bounds the annual return, in percent.
	ReturnRange = Bounds{Min: 1, Max: 10, Step: 0.1}
	// SavingsRange bounds the monthly savings, in yen.
	SavingsRange = Bounds{Min: 0, Max: 200000, Step: 5000}
)

// Clamp returns v limited to [b.Min, b.Max].
func (b Bounds) Clamp(v float64) float64 {
	return min(max(v, b.Min), b.Max)
}

// Nudge moves v by steps increments and clamps the result.
// The arithmetic is decimal so that repeated 0.1 steps do not drift.
func (b Bounds) Nudge(v float64, steps int) float64 {
	d := decimal.NewFromFloat(v).Add(decimal.NewFromFloat(b.Step).Mul(decimal.NewFromInt(int64(steps))))
	return b.Clamp(d.InexactFloat64())
}

// Contains reports whether v is within bounds.
func (b Bounds) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

// Scenario holds the knobs of a projection.
type Scenario struct {
	AnnualReturn   float64 `json:"annualReturn" yaml:"annualReturn"` // percent
	MonthlySavings float64 `json:"monthlySavings" yaml:"monthlySavings"`
	HorizonMonths  int     `json:"horizonMonths" yaml:"horizonMonths"`
}

// DefaultScenario returns the scenario the dashboard opens with for p.
func DefaultScenario(p Profile) Scenario {
	savings := p.MonthlySavingsTarget
	if savings == 0 {
		savings = DefaultMonthlySavings
	}
	return Scenario{
		AnnualReturn:   DefaultAnnualReturn,
		MonthlySavings: savings,
		HorizonMonths:  DefaultHorizonMonths,
	}
}

// Validate rejects inputs for which the projection is degenerate.
func (s Scenario) Validate(p Profile) error {
	var errs []error
	if p.TargetAssets < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeTarget, p.TargetAssets))
	}
	if p.CurrentAssets < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeAssets, p.CurrentAssets))
	}
	if s.MonthlySavings < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeSavings, s.MonthlySavings))
	}
	if s.HorizonMonths < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrNegativeHorizon, s.HorizonMonths))
	}
	return errors.Join(errs...)
}

// Project runs the projection engine with the scenario's knobs.
func (s Scenario) Project(p Profile) Projection {
	return Project(p, s.AnnualReturn, s.MonthlySavings, s.HorizonMonths)
}

// SimulationReport gathers a projection and the figures derived from it.
type SimulationReport struct {
	Profile       Profile
	Scenario      Scenario
	Projection    Projection
	YearsToTarget float64
	ReachesTarget bool    // false when the target is beyond the horizon.
	CalloutYear   float64 // elapsed year of PassiveIncome.
	PassiveIncome Money
	PlateauMonth  int // -1 when the balance never plateaus.
}

// NewSimulationReport validates the inputs and projects p under s.
func NewSimulationReport(p Profile, s Scenario) (*SimulationReport, error) {
	if err := s.Validate(p); err != nil {
		return nil, fmt.Errorf("invalid simulation: %w", err)
	}
	proj := s.Project(p)
	r := &SimulationReport{
		Profile:      p,
		Scenario:     s,
		Projection:   proj,
		CalloutYear:  CalloutYear,
		PlateauMonth: -1,
	}
	r.YearsToTarget, r.ReachesTarget = proj.YearsToTarget(p.TargetAssets)
	r.PassiveIncome = Yen(proj.PassiveIncomeAt(CalloutYear, PassiveIncomeTolerance))
	if i := proj.Plateau(p.TargetAssets); i >= 0 {
		r.PlateauMonth = proj[i].Month
	}
	return r, nil
}

// HorizonYears returns the simulated duration in years.
func (r *SimulationReport) HorizonYears() float64 { return float64(r.Scenario.HorizonMonths) / 12 }

// Target returns the target assets as Money.
func (r *SimulationReport) Target() Money { return Yen(r.Profile.TargetAssets) }

// Final returns the assets at the end of the horizon.
func (r *SimulationReport) Final() Money { return Yen(r.Projection.Last().TotalAssets) }
