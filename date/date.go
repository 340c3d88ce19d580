// Package date provides a day granularity Date, anchored in Japan Standard Time.
package date

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Label layouts used on chart axes.
const (
	MonthDay  = "01/02"
	YearMonth = "2006/01"
)

// JST is Japan Standard Time. Japan has no daylight saving, a fixed zone avoids depending on tzdata.
var JST = time.FixedZone("JST", 9*60*60)

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// In returns the Date of t as seen in Japan.
func In(t time.Time) Date { return New(t.In(JST).Date()) }

// Today returns the current date in Japan.
func Today() Date { return In(time.Now()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonths returns a new Date with the given number of months added.
// Overflowing days roll into the next month, e.g. 03-31 minus one month is 03-03 (or 03-02).
func (d Date) AddMonths(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format formats the date with a time layout, e.g. MonthDay.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// UnmarshalYAML reads a date from a yaml scalar.
func (j *Date) UnmarshalYAML(value *yaml.Node) error {
	// unquoted dates resolve to !!timestamp, read the raw scalar instead.
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	d, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalYAML() (any, error) { return j.String(), nil }

// check that a Date pointer is a valid marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
var _ yaml.Unmarshaler = (*Date)(nil)
var _ yaml.Marshaler = (*Date)(nil)
