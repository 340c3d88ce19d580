// Command fire projects when your assets reach your FIRE target.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/minifire/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the environment may already hold the keys.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when run by the shell to complete the command line.
	cmd.Completion().Complete("fire")

	flag.Parse()
	cmd.SetupLogging()

	// unknown commands may be provided by a fire-<command> binary.
	if name := flag.Arg(0); name != "" && !cmd.Known(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
