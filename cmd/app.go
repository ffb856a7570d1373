// Package cmd implements the CLI application to monitor the fund's risk.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lakefield/risknav"
	"golang.org/x/term"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&healthCmd{},
	&limitsCmd{},
	&stressCmd{},
	&reviewCmd{},
	&qualityCmd{},
	&seedCmd{},
	&pullCmd{},
	&serveCmd{},
	&assistCmd{},
	&topicCmd{},
	&versionCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "data", "Path to the folder holding positions and policies")

// loadBook reads the position and policy files from the app data folder.
func loadBook() (*risknav.Book, error) {
	book, err := risknav.LoadBook(*dataDir)
	if err != nil {
		return nil, fmt.Errorf("load book from %q: %w", *dataDir, err)
	}
	return book, nil
}

// snapshotOn resolves the report date: the -d flag if given, the book's
// latest day otherwise.
func snapshotOn(book *risknav.Book, d string) (*risknav.Snapshot, error) {
	on := book.LastDate()
	if d != "" {
		var err error
		on, err = risknav.ParseDate(d)
		if err != nil {
			return nil, err
		}
	}
	return risknav.Compute(book, on), nil
}

// printMarkdown renders markdown to the terminal with glamour when
// stdout is a TTY, and prints it raw otherwise (pipes, redirects).
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(110),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
