// Package web serves the risk dashboard: five HTML views over one
// snapshot, a JSON API for downstream consumers, and the generated
// stylesheet.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/agent"
	"github.com/lakefield/risknav/theme"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	book    *risknav.Book
	respond agent.Responder
	render  *renderer
	router  *http.ServeMux
	http    *http.Server
}

// New creates a new Server over the given book. It sets up routes and
// middleware but does not start listening.
func New(book *risknav.Book, cfg Config) (*Server, error) {
	mux := http.NewServeMux()

	rn, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	s := &Server{
		book:    book,
		respond: agent.OfflineResponder(),
		render:  rn,
		router:  mux,
		http: &http.Server{
			Addr:         cfg.Addr,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second, // generous for model-backed copilot answers
			IdleTimeout:  60 * time.Second,
		},
	}

	s.routes()

	// Wrap with middleware (outermost runs first).
	s.http.Handler = logging(recovery(mux))

	return s, nil
}

// SetResponder swaps the copilot's phrasing step, e.g. for the
// Gemini-backed responder when an API key is configured.
func (s *Server) SetResponder(r agent.Responder) { s.respond = r }

// routes registers all HTTP handlers on the server's mux.
func (s *Server) routes() {
	// Dashboard tabs
	s.router.HandleFunc("GET /{$}", s.handleHealth)
	s.router.HandleFunc("GET /limits", s.handleLimits)
	s.router.HandleFunc("GET /stress", s.handleStress)
	s.router.HandleFunc("GET /copilot", s.handleCopilot)
	s.router.HandleFunc("POST /copilot", s.handleCopilotAsk)
	s.router.HandleFunc("GET /pipeline", s.handlePipeline)

	// Requirements browser
	s.router.HandleFunc("GET /topics", s.handleTopics)
	s.router.HandleFunc("GET /topics/{name}", s.handleTopic)

	// Stylesheet, generated from the palette constants
	s.router.HandleFunc("GET /theme.css", s.handleTheme)

	// JSON API
	s.router.HandleFunc("GET /api/snapshot", s.apiSnapshot)
	s.router.HandleFunc("GET /api/series", s.apiSeries)
	s.router.HandleFunc("GET /api/positions", s.apiPositions)
	s.router.HandleFunc("GET /api/stress", s.apiStress)
}

// Start begins listening. It blocks until the server is shut down.
func (s *Server) Start() error {
	slog.Info("dashboard listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the full middleware-wrapped handler, mainly for
// tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, theme.CSS())
}

// snapshotFor computes the snapshot for the request: the optional
// ?date= query parameter, or the book's latest day.
func (s *Server) snapshotFor(r *http.Request) (*risknav.Snapshot, error) {
	on := s.book.LastDate()
	if q := r.URL.Query().Get("date"); q != "" {
		var err error
		on, err = risknav.ParseDate(q)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", q, err)
		}
	}
	return risknav.Compute(s.book, on), nil
}
