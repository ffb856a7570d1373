package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav/renderer"
)

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	date string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display the fund health report" }
func (*healthCmd) Usage() string {
	return `rnav health [-d <date>]

  Displays the fund's key figures for a single day: funded status,
  surplus, durations, and the asset mix against policy targets.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to the latest day)")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
