package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/agent"
	"github.com/lakefield/risknav/web"
	"google.golang.org/genai"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the risk dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `rnav serve [-addr <host:port>]

  Serves the dashboard: the five tabs, the requirements browser and
  the JSON API. Configuration also comes from the environment
  (RISKNAV_ADDR, RISKNAV_DATA, GEMINI_API_KEY); flags win.

  With GEMINI_API_KEY set, the copilot tab phrases its answers with
  the model. Without it, answers fall back to the computed facts.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address (overrides RISKNAV_ADDR)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := web.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}
	if *dataDir != "data" {
		cfg.DataDir = *dataDir
	}

	book, err := risknav.LoadBook(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Hint: run 'rnav seed' to generate a demo history first.")
		return subcommands.ExitFailure
	}

	s, err := web.New(book, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
			return subcommands.ExitFailure
		}
		s.SetResponder(agent.GeminiResponder(client))
	}

	// Serve until interrupted, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	select {
	case err := <-errc:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
