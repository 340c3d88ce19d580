// Package cmd implements the fire CLI application: FIRE projections over a
// dashboard, and AI advice about it.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/minifire"
	"github.com/etnz/minifire/advisor"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"simulation", []subcommands.Command{&simulateCmd{}, &tuiCmd{}}},
	{"dashboard", []subcommands.Command{&overviewCmd{}, &hustleCmd{}}},
	{"ai", []subcommands.Command{&adviceCmd{}, &marketCmd{}, &strategyCmd{}, &stockCmd{}, &dashboardCmd{}, &assistCmd{}}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dashboardFile = flag.String("dashboard-file", "", "Path to the dashboard file (YAML or JSON). Defaults to $FIRE_DASHBOARD_FILE, or a sample dashboard")
	modelName     = flag.String("model", "", "Gemini model. Defaults to $FIRE_MODEL, or "+advisor.DefaultModel)
	verbose       = flag.Bool("v", false, "Log debug messages")
	rawOutput     = flag.Bool("raw", false, "Print markdown as is, even on a terminal")
	cacheDir      = flag.String("cache-dir", "", "Directory caching the AI answers for the day. Defaults to $FIRE_CACHE_DIR, no cache if empty")
)

// envOr returns the flag value v, or the environment variable key when v is empty.
func envOr(v, key string) string {
	if v != "" {
		return v
	}
	return os.Getenv(key)
}

// SetupLogging configures the standard logger from -v and $FIRE_LOG_LEVEL.
// Only warnings are logged by default.
func SetupLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(os.Getenv("FIRE_LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	if *verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

// loadDashboard reads the dashboard file, or returns the sample dashboard.
func loadDashboard() (*minifire.Dashboard, error) {
	path := envOr(*dashboardFile, "FIRE_DASHBOARD_FILE")
	if path == "" {
		logrus.Debug("no dashboard file, using the sample dashboard")
		return minifire.DefaultDashboard(), nil
	}
	d, err := minifire.LoadDashboard(path)
	if err != nil {
		return nil, err
	}
	logrus.WithField("file", path).Debug("dashboard loaded")
	return d, nil
}

// model returns the Gemini model to use.
func model() string {
	if m := envOr(*modelName, "FIRE_MODEL"); m != "" {
		return m
	}
	return advisor.DefaultModel
}

// newAdvisor creates the AI advisor. Without credentials it still works, with placeholders only.
func newAdvisor(ctx context.Context) *advisor.Client {
	c, err := advisor.NewFromEnv(ctx, model(), envOr(*cacheDir, "FIRE_CACHE_DIR"))
	if err != nil {
		logrus.WithError(err).Warn("Gemini is not available, showing placeholders")
	}
	return c
}

// renderMarkdown formats md for the terminal. It returns md unchanged when
// stdout is not a terminal or -raw is set.
func renderMarkdown(md string) string {
	if *rawOutput || !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logrus.WithError(err).Debug("cannot create the markdown renderer")
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logrus.WithError(err).Debug("cannot render markdown")
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Println(renderMarkdown(md)) }
