package minifire

import "math"

const (
	// DefaultHorizonMonths is the simulation length: 15 years.
	DefaultHorizonMonths = 12 * 15
	// PlateauFactor stops the growth once the balance reaches this multiple of the target.
	PlateauFactor = 1.5
	// SafeWithdrawalRate is the yearly share of the assets assumed withdrawable forever (the 4% rule).
	SafeWithdrawalRate = 0.04
	// PassiveIncomeTolerance is the distance in years within which a point answers PassiveIncomeAt.
	PassiveIncomeTolerance = 0.1
	// CalloutYear is the elapsed year highlighted for passive income.
	CalloutYear = 7.0
)

// Profile is the financial situation a projection starts from.
type Profile struct {
	MonthlyIncome        float64 `json:"monthlyIncome" yaml:"monthlyIncome"` // informational only.
	CurrentAssets        float64 `json:"currentAssets" yaml:"currentAssets"`
	TargetAssets         float64 `json:"targetAssets" yaml:"targetAssets"`
	MonthlySavingsTarget float64 `json:"monthlySavingsTarget" yaml:"monthlySavingsTarget"`
}

// Point is the projected state at the start of a simulated month.
type Point struct {
	Month                int     `json:"month"`
	Year                 float64 `json:"year"` // Month/12 with one decimal.
	TotalAssets          int64   `json:"totalAssets"`
	PassiveIncomeMonthly int64   `json:"passiveIncomeMonthly"`
}

// Projection is a monthly time series of projected assets, ordered by Month.
type Projection []Point

// Project simulates the growth of p.CurrentAssets over horizonMonths months.
//
// Every month the balance grows by annualReturnPercent/100/12 and receives
// monthlySavings, until it reaches PlateauFactor times p.TargetAssets: from
// then on it stays flat. Each point captures the balance before that month's
// growth, so the result holds horizonMonths+1 points starting with the
// current assets.
//
// Project never fails: negative savings shrink the balance and a zero target
// plateaus immediately. Use Scenario.Validate to reject such inputs.
func Project(p Profile, annualReturnPercent, monthlySavings float64, horizonMonths int) Projection {
	if horizonMonths < 0 {
		return Projection{}
	}
	monthlyRate := annualReturnPercent / 100 / 12
	ceiling := p.TargetAssets * PlateauFactor

	points := make(Projection, 0, horizonMonths+1)
	current := p.CurrentAssets
	for i := 0; i <= horizonMonths; i++ {
		points = append(points, Point{
			Month:                i,
			Year:                 round1(float64(i) / 12),
			TotalAssets:          round(current),
			PassiveIncomeMonthly: round(current * SafeWithdrawalRate / 12),
		})
		if current < ceiling {
			current = current*(1+monthlyRate) + monthlySavings
		}
	}
	return points
}

// YearsToTarget returns the year of the first point whose assets reach target.
// ok is false when the target is beyond the horizon.
func (p Projection) YearsToTarget(target float64) (year float64, ok bool) {
	for _, pt := range p {
		if float64(pt.TotalAssets) >= target {
			return pt.Year, true
		}
	}
	return 0, false
}

// PassiveIncomeAt returns the monthly passive income of the point closest to
// year, provided it lies strictly within tolerance. It returns 0 otherwise.
func (p Projection) PassiveIncomeAt(year, tolerance float64) int64 {
	best := -1
	bestDist := tolerance
	for i, pt := range p {
		// neighbours one month apart can be within tolerance too, keep the closest.
		if d := math.Abs(pt.Year - year); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0
	}
	return p[best].PassiveIncomeMonthly
}

// Plateau returns the index of the first point at or above PlateauFactor times
// target, or -1 if the projection never gets there.
func (p Projection) Plateau(target float64) int {
	for i, pt := range p {
		if float64(pt.TotalAssets) >= target*PlateauFactor {
			return i
		}
	}
	return -1
}

// Last returns the last point, the zero Point for an empty projection.
func (p Projection) Last() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1]
}

// Yearly returns one point every twelve months, starting with month 0.
func (p Projection) Yearly() Projection {
	res := make(Projection, 0, len(p)/12+1)
	for _, pt := range p {
		if pt.Month%12 == 0 {
			res = append(res, pt)
		}
	}
	return res
}

// round rounds half up, toward +inf.
func round(x float64) int64 { return int64(math.Floor(x + 0.5)) }

func round1(x float64) float64 { return math.Floor(x*10+0.5) / 10 }
