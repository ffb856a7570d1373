package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/renderer"
)

// stressCmd holds the flags for the 'stress' subcommand.
type stressCmd struct {
	date      string
	scenario  string
	rateBP    float64
	equityPct float64
	inflPct   float64
}

func (*stressCmd) Name() string     { return "stress" }
func (*stressCmd) Synopsis() string { return "run a stress scenario over the fund" }
func (*stressCmd) Usage() string {
	return `rnav stress [-d <date>] [-s <preset>] [-rates <bp>] [-equities <pct>] [-inflation <pct>]

  Re-prices the day's positions under a scenario and reports the
  stressed balance sheet, the surplus waterfall and the top movers.
  Either name a preset with -s, or give the shocks directly.

Usage Examples:
$ rnav stress -s "Rate Hike Shock"
$ rnav stress -rates 150 -equities -10
`
}

func (c *stressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to the latest day)")
	f.StringVar(&c.scenario, "s", "", "Preset scenario name")
	f.Float64Var(&c.rateBP, "rates", 0, "Parallel rate shock in basis points")
	f.Float64Var(&c.equityPct, "equities", 0, "Equity market shock in percent")
	f.Float64Var(&c.inflPct, "inflation", 0, "Inflation shock in percent")
}

func (c *stressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc := risknav.Scenario{
		Name:         "Custom",
		RateBP:       c.rateBP,
		EquityPct:    c.equityPct,
		InflationPct: c.inflPct,
	}
	if c.scenario != "" {
		var ok bool
		sc, ok = risknav.ScenarioByName(c.scenario)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", c.scenario)
			for _, p := range risknav.Scenarios {
				fmt.Fprintf(os.Stderr, "  %s\n", p.Name)
			}
			return subcommands.ExitUsageError
		}
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	snap, err := snapshotOn(book, c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var md strings.Builder
	renderer.RenderStress(&md, snap.Stress(sc))
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
