package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/minifire"
	"github.com/etnz/minifire/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete the values of flags that are not free text.
var flagPredictors = map[string]complete.Predictor{
	"dashboard-file": predict.Files("*.yaml"),
	"range":          predict.Set(rangeNames()),
	"add":            predict.Set(expenseCategoryPrefixes()),
}

func rangeNames() []string {
	var names []string
	for _, r := range minifire.TimeRanges {
		names = append(names, string(r))
	}
	return names
}

func expenseCategoryPrefixes() []string {
	var res []string
	for _, c := range minifire.ExpenseCategories {
		res = append(res, c+":")
	}
	return res
}

// Completion returns the shell completion of the fire command and its subcommands.
// Flags are read from the command line flag set and the commands themselves.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, g := range groups {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(fs)}
		}
	}
	topics, _ := docs.GetAllTopics()
	root.Sub["topic"].Args = predict.Set(topics)
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Name, "test.") {
			return
		}
		switch {
		case isBool(f):
			flags[f.Name] = predict.Nothing
		case flagPredictors[f.Name] != nil:
			flags[f.Name] = flagPredictors[f.Name]
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
