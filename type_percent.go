package minifire

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percent with one decimal, the precision the dashboard shows.
func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", p)
	if res == "+0.0%" || res == "-0.0%" {
		return "-"
	}
	return res
}
