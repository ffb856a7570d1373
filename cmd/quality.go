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

// qualityCmd holds the flags for the 'quality' subcommand.
type qualityCmd struct{}

func (*qualityCmd) Name() string     { return "quality" }
func (*qualityCmd) Synopsis() string { return "display the data quality report" }
func (*qualityCmd) Usage() string {
	return `rnav quality

  Checks the loaded position history for missing values, out-of-range
  numbers and volume drops, and prints the per-column quality table.
`
}

func (c *qualityCmd) SetFlags(f *flag.FlagSet) {}

func (c *qualityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var md strings.Builder
	renderer.RenderQuality(&md, book.Quality())
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
