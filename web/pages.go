package web

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/agent"
	"github.com/lakefield/risknav/docs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// pageData is the part of the template data shared by every page.
type pageData struct {
	Nav    string
	On     risknav.Date
	Alerts int // breaches + warnings, shown in the sidebar
}

func (s *Server) page(nav string, snap *risknav.Snapshot) pageData {
	return pageData{
		Nav:    nav,
		On:     snap.On(),
		Alerts: snap.Breaches() + snap.Warnings(),
	}
}

// ── Fund Health ─────────────────────────────────────────────────────────

type healthData struct {
	pageData
	Snapshot *risknav.Snapshot
	Mix      []risknav.ClassTotal
	Compare  []risknav.ClassComparison
	Series   []risknav.SeriesPoint
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render.render(w, "health.html", healthData{
		pageData: s.page("health", snap),
		Snapshot: snap,
		Mix:      snap.Mix(),
		Compare:  snap.Comparison(),
		Series:   s.book.Series(),
	})
}

// ── Limit Monitor ───────────────────────────────────────────────────────

type limitsData struct {
	pageData
	Limits   []risknav.LimitRow
	Issuers  []risknav.IssuerRow
	Breaches int
	Warnings int
	FX       risknav.Money
	FXPct    float64
}

func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fx, fxPct := snap.FXExposure()
	s.render.render(w, "limits.html", limitsData{
		pageData: s.page("limits", snap),
		Limits:   snap.Limits(),
		Issuers:  snap.TopIssuers(5),
		Breaches: snap.Breaches(),
		Warnings: snap.Warnings(),
		FX:       fx,
		FXPct:    fxPct,
	})
}

// ── Stress Testing ──────────────────────────────────────────────────────

type stressData struct {
	pageData
	Scenarios []risknav.Scenario
	Scenario  risknav.Scenario
	Result    *risknav.StressResult
	Waterfall []risknav.WaterfallStage
	Movers    []risknav.Mover
}

func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sc := scenarioFromQuery(r)
	result := snap.Stress(sc)
	s.render.render(w, "stress.html", stressData{
		pageData:  s.page("stress", snap),
		Scenarios: risknav.Scenarios,
		Scenario:  sc,
		Result:    result,
		Waterfall: result.Waterfall(),
		Movers:    result.TopMovers(5),
	})
}

// scenarioFromQuery reads the scenario from the query string: a preset
// by name, or the three shocks directly. Shocks are clamped.
func scenarioFromQuery(r *http.Request) risknav.Scenario {
	q := r.URL.Query()
	if name := q.Get("scenario"); name != "" {
		if sc, ok := risknav.ScenarioByName(name); ok {
			return sc
		}
	}
	sc := risknav.Scenario{Name: "Custom"}
	sc.RateBP = queryFloat(q.Get("rate_bp"))
	sc.EquityPct = queryFloat(q.Get("equity_pct"))
	sc.InflationPct = queryFloat(q.Get("inflation_pct"))
	return sc.Clamp()
}

func queryFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ── AI Copilot ──────────────────────────────────────────────────────────

type copilotData struct {
	pageData
	Question string
	Answer   string
	Steps    []agent.Step
	Err      string
}

func (s *Server) handleCopilot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.render.render(w, "copilot.html", copilotData{pageData: s.page("copilot", snap)})
}

func (s *Server) handleCopilotAsk(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	question := r.FormValue("question")
	data := copilotData{
		pageData: s.page("copilot", snap),
		Question: question,
	}

	loop := &agent.Loop{Snapshot: snap, Respond: s.respond}
	answer, steps, err := loop.Run(r.Context(), question)
	data.Steps = steps
	if err != nil {
		data.Err = err.Error()
	} else {
		data.Answer = answer
	}
	s.render.render(w, "copilot.html", data)
}

// ── Data Pipeline ───────────────────────────────────────────────────────

type pipelineData struct {
	pageData
	Report *risknav.QualityReport
	Label  string
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report := s.book.Quality()
	label := report.Status().String()
	if report.Status() == risknav.StatusBreach {
		label = "ISSUE"
	}
	s.render.render(w, "pipeline.html", pipelineData{
		pageData: s.page("pipeline", snap),
		Report:   report,
		Label:    label,
	})
}

// ── Requirements browser ────────────────────────────────────────────────

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type topicsData struct {
	pageData
	Topics  []string
	Topic   string
	Content template.HTML
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	s.renderTopic(w, r, docs.DefaultTopic)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	s.renderTopic(w, r, r.PathValue("name"))
}

func (s *Server) renderTopic(w http.ResponseWriter, r *http.Request, name string) {
	snap, err := s.snapshotFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	topics, err := docs.GetAllTopics()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	content, err := docs.GetTopic(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.render.render(w, "topics.html", topicsData{
		pageData: s.page("topics", snap),
		Topics:   topics,
		Topic:    name,
		Content:  template.HTML(buf.String()),
	})
}
