package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav"
)

// pullCmd holds the flags for the 'pull' subcommand.
type pullCmd struct {
	base string
	date string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "fetch a day's positions from the upstream risk engine" }
func (*pullCmd) Usage() string {
	return `rnav pull -from <url> [-d <date>]

  Fetches the day's position export from the upstream risk engine's
  API, appends it to the local history and saves the data folder.
  Responses are cached on disk per business day, so repeated pulls
  for the same day do not hit the upstream again.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "from", "", "Base URL of the upstream risk engine")
	f.StringVar(&c.date, "d", "", "Date to fetch (defaults to the latest publication)")
}

func (c *pullCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.base == "" {
		fmt.Fprintln(os.Stderr, "Error: -from is required")
		return subcommands.ExitUsageError
	}
	var on risknav.Date
	if c.date != "" {
		var err error
		on, err = risknav.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	positions, err := risknav.FetchPositions(c.base, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(positions) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: upstream returned no positions.")
		return subcommands.ExitSuccess
	}

	book, err := loadBook()
	if err != nil {
		// First pull into an empty data folder starts a new history.
		fmt.Fprintln(os.Stderr, "warning, no local history found, starting a new one")
		book = risknav.NewBook(nil, nil)
	}
	book.Append(positions...)

	if err := risknav.SaveBook(*dataDir, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Appended %d positions for %s to %s\n", len(positions), positions[0].Date, *dataDir)
	return subcommands.ExitSuccess
}
