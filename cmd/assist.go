package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the interactive risk copilot.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the risk copilot" }
func (*assistCmd) Usage() string {
	return `rnav assist [question]

  Start an interactive session with the risk copilot. The copilot can
  read the fund's figures, check limits and run stress scenarios over
  the loaded history. Requires GEMINI_API_KEY in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewRiskAnalyst(book))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Copilot failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
