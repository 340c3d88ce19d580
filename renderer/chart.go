package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	fill      = "█"
	reference = "-"
)

// Chart is a text area chart: one column per value, filled from the base up.
type Chart struct {
	Values    []float64
	Labels    []string // x axis labels, one per value; only the first and last are drawn.
	Reference float64  // a horizontal line is drawn at Reference unless it is zero.
	Base      float64  // value at the bottom of the y axis.
	Height    int      // rows, defaults to 10.
	Column    int      // width of a column, defaults to 3.
	Unit      func(float64) string
}

// String draws the chart, an empty string when there are no values.
func (c Chart) String() string {
	if len(c.Values) == 0 {
		return ""
	}
	height, column := c.Height, c.Column
	if height <= 0 {
		height = 10
	}
	if column <= 0 {
		column = 3
	}
	unit := c.Unit
	if unit == nil {
		unit = func(v float64) string { return fmt.Sprintf("%.0f", v) }
	}

	top := c.Reference
	for _, v := range c.Values {
		top = max(top, v)
	}
	if top <= c.Base {
		top = c.Base + 1
	}
	step := (top - c.Base) / float64(height)

	// the row holding the reference line, -1 if none.
	refRow := -1
	if c.Reference != 0 && c.Reference > c.Base {
		refRow = min(int((c.Reference-c.Base)/step-1e-9), height-1)
	}

	labels := make([]string, height)
	labels[height-1] = unit(top)
	labels[0] = unit(c.Base)
	if refRow >= 0 {
		labels[refRow] = unit(c.Reference)
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, utf8.RuneCountInString(l))
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%*s │", labelWidth, labels[row])
		mid := c.Base + step*(float64(row)+0.5)
		for _, v := range c.Values {
			cell := " "
			switch {
			case v >= mid:
				cell = fill
			case row == refRow:
				cell = reference
			}
			b.WriteString(strings.Repeat(cell, column))
		}
		b.WriteString("\n")
	}

	width := len(c.Values) * column
	fmt.Fprintf(&b, "%*s └%s\n", labelWidth, "", strings.Repeat("─", width))
	if len(c.Labels) > 0 {
		first, last := c.Labels[0], c.Labels[len(c.Labels)-1]
		gap := width - utf8.RuneCountInString(first) - utf8.RuneCountInString(last)
		axis := first
		if len(c.Labels) > 1 && gap > 0 {
			axis += strings.Repeat(" ", gap) + last
		}
		fmt.Fprintf(&b, "%*s  %s\n", labelWidth, "", axis)
	}
	return b.String()
}
