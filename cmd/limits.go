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

// limitsCmd holds the flags for the 'limits' subcommand.
type limitsCmd struct {
	date  string
	quiet bool
}

func (*limitsCmd) Name() string     { return "limits" }
func (*limitsCmd) Synopsis() string { return "display the limit monitor report" }
func (*limitsCmd) Usage() string {
	return `rnav limits [-d <date>] [-q]

  Checks every policy limit for a single day and reports breaches,
  warnings and issuer concentration. With -q, prints nothing and sets
  the exit code only, for use in scheduled checks.
`
}

func (c *limitsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to the latest day)")
	f.BoolVar(&c.quiet, "q", false, "No output, exit non-zero on any breach")
}

func (c *limitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.quiet {
		if snap.Breaches() > 0 {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var md strings.Builder
	renderer.RenderLimits(&md, snap)
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
