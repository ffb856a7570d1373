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

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	date     string
	scenario string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "display the full risk report for a date" }
func (*reviewCmd) Usage() string {
	return `rnav review [-d <date>] [-s <scenario>]

  Displays every report for a single day in one pass: fund health,
  limit monitor, a stress scenario and the data quality check.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to the latest day)")
	f.StringVar(&c.scenario, "s", "Rate Hike Shock", "Preset scenario for the stress section")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sc, ok := risknav.ScenarioByName(c.scenario)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", c.scenario)
		return subcommands.ExitUsageError
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
	renderer.RenderHealth(&md, snap)
	fmt.Fprintln(&md)
	renderer.RenderLimits(&md, snap)
	fmt.Fprintln(&md)
	renderer.RenderStress(&md, snap.Stress(sc))
	fmt.Fprintln(&md)
	renderer.RenderQuality(&md, book.Quality())
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
