package minifire

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of every amount in the dashboard.
const DefaultCurrency = money.JPY

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in the given currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Yen returns a Money of value in the default currency.
func Yen[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return M(value, DefaultCurrency)
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "¥1,500,000".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Man returns the value in units of ten thousands, the way Japanese charts label yen axes.
func (m Money) Man() string {
	return m.value.Div(decimal.NewFromInt(10000)).Round(0).String() + "万"
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(n)), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/n as a Percent, zero when n is zero.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the value as a float64, for the projection engine.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Currency string          `json:"currency,omitempty"`
		Amount   decimal.Decimal `json:"amount"`
	}{m.cur, m.value.Round(int32(m.currency().Fraction))})
}
