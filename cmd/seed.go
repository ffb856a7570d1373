package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/demo"
)

// seedCmd holds the flags for the 'seed' subcommand.
type seedCmd struct {
	days  int
	seed  int64
	clean bool
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "generate a demo position history" }
func (*seedCmd) Usage() string {
	return `rnav seed [-days <n>] [-seed <n>] [-clean]

  Writes a synthetic but realistic position history and policy table
  into the data folder. The default history includes an FX limit
  breach a few days before the latest date; -clean omits it.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 10, "Number of business days of history")
	f.Int64Var(&c.seed, "seed", 42, "Random seed, same seed same history")
	f.BoolVar(&c.clean, "clean", false, "Generate a history without the FX breach")
}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := demo.DefaultConfig()
	cfg.Days = c.days
	cfg.Seed = c.seed
	if c.clean {
		cfg.BreachDate = risknav.Date{}
	}

	book := demo.Generate(cfg)
	if err := risknav.SaveBook(*dataDir, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d positions over %d days to %s\n", book.Len(), len(book.Dates()), *dataDir)
	return subcommands.ExitSuccess
}
