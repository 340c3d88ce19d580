// Package tui is the interactive simulator: the projection is recomputed
// every time the annual return or the monthly savings change.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/minifire"
	"github.com/etnz/minifire/renderer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#10b981")).
			Padding(0, 2).
			Bold(true)
	headlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")).
			Bold(true)
	knobStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#64748b")).
			Padding(0, 1)
	chartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748b")).
			Italic(true)
)

// Model is the bubbletea model of the simulator.
type Model struct {
	profile  minifire.Profile
	scenario minifire.Scenario
	report   *minifire.SimulationReport
	err      error
}

// New returns a simulator of p, starting at s clamped to the knobs' ranges.
func New(p minifire.Profile, s minifire.Scenario) Model {
	s.AnnualReturn = minifire.ReturnRange.Clamp(s.AnnualReturn)
	s.MonthlySavings = minifire.SavingsRange.Clamp(s.MonthlySavings)
	m := Model{profile: p, scenario: s}
	m.recompute()
	return m
}

// Run opens the simulator in the terminal until the user quits.
func Run(p minifire.Profile, s minifire.Scenario) error {
	_, err := tea.NewProgram(New(p, s), tea.WithAltScreen()).Run()
	return err
}

// Scenario returns the current knobs.
func (m Model) Scenario() minifire.Scenario { return m.scenario }

// Report returns the current projection, nil if the inputs are invalid.
func (m Model) Report() *minifire.SimulationReport { return m.report }

func (m *Model) recompute() {
	m.report, m.err = minifire.NewSimulationReport(m.profile, m.scenario)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.scenario.AnnualReturn = minifire.ReturnRange.Nudge(m.scenario.AnnualReturn, -1)
	case "right", "l":
		m.scenario.AnnualReturn = minifire.ReturnRange.Nudge(m.scenario.AnnualReturn, 1)
	case "down", "j":
		m.scenario.MonthlySavings = minifire.SavingsRange.Nudge(m.scenario.MonthlySavings, -1)
	case "up", "k":
		m.scenario.MonthlySavings = minifire.SavingsRange.Nudge(m.scenario.MonthlySavings, 1)
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FIRE Simulator"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	r := m.report
	years := fmt.Sprintf("more than %g years", r.HorizonYears())
	if r.ReachesTarget {
		years = fmt.Sprintf("%.1f years", r.YearsToTarget)
	}
	fmt.Fprintf(&b, "Target %s reached in %s\n", r.Target(), headlineStyle.Render(years))
	if !r.PassiveIncome.IsZero() {
		fmt.Fprintf(&b, "Passive income after %g years: %s per month\n", r.CalloutYear, headlineStyle.Render(r.PassiveIncome.String()))
	}
	b.WriteString("\n")

	knobs := lipgloss.JoinHorizontal(lipgloss.Top,
		knobStyle.Render(fmt.Sprintf("Annual return\n%s", minifire.Percent(m.scenario.AnnualReturn))),
		" ",
		knobStyle.Render(fmt.Sprintf("Monthly savings\n%s", minifire.Yen(m.scenario.MonthlySavings))),
	)
	b.WriteString(knobs)
	b.WriteString("\n\n")

	chart := renderer.Chart{Reference: m.profile.TargetAssets, Unit: func(v float64) string { return minifire.Yen(v).Man() }}
	for _, pt := range r.Projection.Yearly() {
		chart.Values = append(chart.Values, float64(pt.TotalAssets))
		chart.Labels = append(chart.Labels, fmt.Sprintf("%gy", pt.Year))
	}
	b.WriteString(chartStyle.Render(chart.String()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→: return ±0.1%  ↑/↓: savings ±¥5,000  q: quit"))
	return b.String()
}
