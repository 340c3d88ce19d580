package minifire

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// The dashboard is read from a human editable YAML file. JSON being a subset of
// YAML, a JSON file is accepted as well. Nothing is ever written back.

//go:embed default_dashboard.yaml
var defaultDashboard []byte

// DecodeDashboard reads a dashboard in YAML or JSON and checks its consistency.
func DecodeDashboard(r io.Reader) (*Dashboard, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	d := new(Dashboard)
	if err := dec.Decode(d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty dashboard")
		}
		return nil, fmt.Errorf("format error: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDashboard reads the dashboard file at path.
func LoadDashboard(path string) (*Dashboard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dashboard %q: %w", path, err)
	}
	defer f.Close()
	d, err := DecodeDashboard(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode dashboard %q: %w", path, err)
	}
	return d, nil
}

// DefaultDashboard returns the sample dashboard shipped with the binary.
func DefaultDashboard() *Dashboard {
	d, err := DecodeDashboard(bytes.NewReader(defaultDashboard))
	if err != nil {
		panic("embedded dashboard is invalid: " + err.Error())
	}
	return d
}

// Validate checks the values a simulation cannot make sense of.
func (d *Dashboard) Validate() error {
	var errs []error
	if d.MonthlyIncome < 0 {
		errs = append(errs, fmt.Errorf("monthlyIncome must not be negative, got %v", d.MonthlyIncome))
	}
	if d.TargetAssets < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeTarget, d.TargetAssets))
	}
	if d.MonthlySavingsTarget < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrNegativeSavings, d.MonthlySavingsTarget))
	}
	for i, a := range d.Assets {
		switch a.Type {
		case Cash, Stock, Bond, Crypto:
		default:
			errs = append(errs, fmt.Errorf("asset #%d %q: unknown type %q", i+1, a.Name, a.Type))
		}
	}
	for i, e := range d.Expenses {
		if e.Category == "" {
			errs = append(errs, fmt.Errorf("expense #%d: %w", i+1, ErrEmptyCategory))
		}
	}
	for i, h := range d.Hustles {
		switch h.Status {
		case HustleNew, HustleApplied, HustleInProgress, HustleCompleted:
		default:
			errs = append(errs, fmt.Errorf("hustle #%d %q: unknown status %q", i+1, h.Title, h.Status))
		}
	}
	return errors.Join(errs...)
}
