package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/minifire"
)

var profile = minifire.Profile{CurrentAssets: 3_000_000, TargetAssets: 30_000_000}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func TestKnobs(t *testing.T) {
	tests := []struct {
		name        string
		start       minifire.Scenario
		keys        []tea.KeyMsg
		wantReturn  float64
		wantSavings float64
	}{
		{
			name:        "right",
			start:       minifire.Scenario{AnnualReturn: 4.5, MonthlySavings: 40000, HorizonMonths: 180},
			keys:        []tea.KeyMsg{{Type: tea.KeyRight}},
			wantReturn:  4.6,
			wantSavings: 40000,
		},
		{
			name:        "left twice",
			start:       minifire.Scenario{AnnualReturn: 4.5, MonthlySavings: 40000, HorizonMonths: 180},
			keys:        []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRunes, Runes: []rune("h")}},
			wantReturn:  4.3,
			wantSavings: 40000,
		},
		{
			name:        "up and down",
			start:       minifire.Scenario{AnnualReturn: 4.5, MonthlySavings: 40000, HorizonMonths: 180},
			keys:        []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}, {Type: tea.KeyDown}},
			wantReturn:  4.5,
			wantSavings: 45000,
		},
		{
			name:        "clamped high",
			start:       minifire.Scenario{AnnualReturn: 10, MonthlySavings: 200000, HorizonMonths: 180},
			keys:        []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyUp}},
			wantReturn:  10,
			wantSavings: 200000,
		},
		{
			name:        "clamped low",
			start:       minifire.Scenario{AnnualReturn: 1, MonthlySavings: 0, HorizonMonths: 180},
			keys:        []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyDown}},
			wantReturn:  1,
			wantSavings: 0,
		},
		{
			name:        "start out of range",
			start:       minifire.Scenario{AnnualReturn: 15, MonthlySavings: 500000, HorizonMonths: 180},
			wantReturn:  10,
			wantSavings: 200000,
		},
		{
			name:        "other keys are ignored",
			start:       minifire.Scenario{AnnualReturn: 4.5, MonthlySavings: 40000, HorizonMonths: 180},
			keys:        []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("x")}, {Type: tea.KeyEnter}},
			wantReturn:  4.5,
			wantSavings: 40000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, New(profile, tt.start), tt.keys...)
			s := m.Scenario()
			if s.AnnualReturn != tt.wantReturn || s.MonthlySavings != tt.wantSavings {
				t.Errorf("scenario = %v%% %v, want %v%% %v", s.AnnualReturn, s.MonthlySavings, tt.wantReturn, tt.wantSavings)
			}
		})
	}
}

func TestRecompute(t *testing.T) {
	m := New(profile, minifire.DefaultScenario(profile))
	before := m.Report().Final()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	after := m.Report().Final()
	if !before.LessThan(after) {
		t.Errorf("final assets %v -> %v, want an increase with a higher return", before, after)
	}
	if m.Report().Scenario.AnnualReturn != 4.6 {
		t.Errorf("report was not recomputed: %+v", m.Report().Scenario)
	}
}

func TestQuit(t *testing.T) {
	m := New(profile, minifire.DefaultScenario(profile))
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Errorf("%s: no command, want quit", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command does not quit", k)
		}
	}
}

func TestView(t *testing.T) {
	m := press(t, New(profile, minifire.DefaultScenario(profile)), tea.KeyMsg{Type: tea.KeyRight})
	v := m.View()
	for _, want := range []string{"FIRE Simulator", "4.6%", "¥40,000", "¥30,000,000", "3000万", "q: quit"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() does not contain %q:\n%s", want, v)
		}
	}

	bad := New(minifire.Profile{CurrentAssets: -1}, minifire.DefaultScenario(profile))
	if bad.Report() != nil || !strings.Contains(bad.View(), "current assets must not be negative") {
		t.Errorf("invalid profile view:\n%s", bad.View())
	}
}
