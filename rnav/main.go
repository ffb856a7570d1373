package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion answers and exits early when invoked by the
	// shell's completion hook.
	completer().Complete("rnav")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	date := map[string]complete.Predictor{"d": predict.Nothing}
	return &complete.Command{
		Flags: map[string]complete.Predictor{"data": predict.Dirs("*")},
		Sub: map[string]*complete.Command{
			"health":  {Flags: date},
			"limits":  {Flags: date},
			"stress":  {Flags: date},
			"review":  {Flags: date},
			"quality": {},
			"seed":    {},
			"pull":    {Flags: date},
			"serve":   {},
			"assist":  {},
			"topic":   {Args: predict.Set{"overview", "fund-health", "limit-monitor", "stress-testing", "data-pipeline", "ai-copilot", "formatting", "theme", "dates"}},
			"version": {},
		},
	}
}
