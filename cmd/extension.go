package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Environment of the extensions, so that they work on the same dashboard.
const (
	EnvDashboardFile = "FIRE_DASHBOARD_FILE"
	EnvModel         = "FIRE_MODEL"
	EnvVerbose       = "FIRE_VERBOSE"
)

// Known reports whether name is a command of c.
func Known(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external fire-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "fire-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logrus.WithError(err).Debugf("no extension %q", externalCmdName)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvDashboardFile+"="+envOr(*dashboardFile, EnvDashboardFile),
		EnvModel+"="+model(),
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}
	return true, 0
}
