package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lakefield/risknav"
)

// Hard compliance limits. A proposal that violates one of these is
// never returned to the user as-is: the audit loop refines it first.
const (
	MaxHedgeRatio     = 0.80
	MaxFXExposure     = 0.15
	MinEquityExposure = 0.20
	MaxSingleIssuer   = 0.05

	// refined proposals land at this fraction of the violated limit
	refineFraction = 0.95

	maxRefineRounds = 3
)

// Step is one node of the audit loop's reasoning trail, kept so a
// reviewer can see what was rejected and why.
type Step struct {
	Node    string // "Analyze", "Calculate", "Audit", "Refine" or "Respond"
	Status  string // "success", "warning" or "error"
	Message string
	Detail  string
}

// Intent is what the loop understood from the user's question.
type Intent string

const (
	IntentHedge  Intent = "hedge"
	IntentStress Intent = "stress"
	IntentLimits Intent = "limits"
	IntentQuery  Intent = "query"
)

// Responder produces the final natural-language answer from the system
// prompt and the user's question. The production responder talks to
// Gemini; tests plug in a canned one.
type Responder func(ctx context.Context, systemPrompt, query string) (string, error)

// Loop runs the copilot's audit cycle over one snapshot: analyze the
// question, calculate, audit any proposal against the compliance
// limits, refine until it passes, then respond.
//
// The numbers never come from the model. Calculation and audit are
// deterministic; the responder only phrases the outcome.
type Loop struct {
	Snapshot *risknav.Snapshot
	Respond  Responder
}

// Run executes the loop for one question and returns the answer with
// the full reasoning trail.
func (l *Loop) Run(ctx context.Context, query string) (string, []Step, error) {
	var steps []Step
	push := func(s Step) { steps = append(steps, s) }

	intent, params := Classify(query)
	push(Step{Node: "Analyze", Status: "success",
		Message: fmt.Sprintf("Intent: %s", strings.ToUpper(string(intent))),
		Detail:  params.describe(intent)})

	notes := []string{fmt.Sprintf("User Intent: %s", intent)}

	switch intent {
	case IntentStress:
		result := l.Snapshot.Stress(params.Scenario.Clamp())
		push(Step{Node: "Calculate", Status: "success",
			Message: "Calculation complete",
			Detail: fmt.Sprintf("Stressed Funded: %s (%+.1fpp)",
				risknav.FormatPercent(result.StressedFunded(), 1), result.DeltaFunded()*100)})
		notes = append(notes, stressContext(result))

	case IntentHedge:
		push(Step{Node: "Calculate", Status: "success",
			Message: "Calculation complete",
			Detail:  fmt.Sprintf("Proposed hedge ratio: %.0f%%", params.HedgeRatio*100)})

		ratio, refined, trail := AuditHedge(params.HedgeRatio)
		steps = append(steps, trail...)
		notes = append(notes, fmt.Sprintf("Proposed hedge ratio: %.0f%%", ratio*100))
		if refined {
			notes = append(notes,
				fmt.Sprintf("Audit: the original request exceeded the %.0f%% hedge limit and was refined to %.0f%%",
					MaxHedgeRatio*100, ratio*100))
		} else {
			notes = append(notes, "Audit: PASS")
		}

	case IntentLimits:
		notes = append(notes, limitContext(l.Snapshot))
	}

	answer, err := l.respond(ctx, query, notes)
	if err != nil {
		push(Step{Node: "Respond", Status: "error", Message: err.Error()})
		return "", steps, err
	}
	push(Step{Node: "Respond", Status: "success", Message: "Response ready"})
	return answer, steps, nil
}

// AuditHedge checks a proposed hedge ratio against the compliance
// limits, refining until it passes: a non-compliant ratio is clamped to
// 95% of the limit and re-audited, at most maxRefineRounds times. It
// returns the final ratio, whether it was refined, and the audit trail.
func AuditHedge(proposed float64) (ratio float64, refined bool, trail []Step) {
	ratio = proposed
	for round := 0; ; round++ {
		if ratio <= MaxHedgeRatio {
			trail = append(trail, Step{Node: "Audit", Status: "success",
				Message: "Compliance check passed",
				Detail:  fmt.Sprintf("Hedge ratio %.0f%% is within limit (%.0f%%)", ratio*100, MaxHedgeRatio*100)})
			return ratio, refined, trail
		}
		trail = append(trail, Step{Node: "Audit", Status: "warning",
			Message: "Compliance check failed",
			Detail:  fmt.Sprintf("Hedge ratio %.0f%% exceeds limit (%.0f%%)", ratio*100, MaxHedgeRatio*100)})
		if round >= maxRefineRounds {
			return ratio, refined, trail
		}
		ratio = MaxHedgeRatio * refineFraction
		refined = true
		trail = append(trail, Step{Node: "Refine", Status: "success",
			Message: fmt.Sprintf("Adjusted to %.0f%%", ratio*100),
			Detail:  "Re-running audit with compliant parameters"})
	}
}

const (
	contextMarker    = "=== EXECUTION CONTEXT ==="
	guidelinesMarker = "=== RESPONSE GUIDELINES ==="
)

func (l *Loop) respond(ctx context.Context, query string, contextParts []string) (string, error) {
	prompt := fmt.Sprintf(`%s

%s
%s

%s
1. If a proposal was refined during audit, explain what happened.
2. Always mention compliance status when discussing hedging.
3. Be concise unless more detail is requested.
`, l.Snapshot.Summary(), contextMarker, strings.Join(contextParts, "\n"), guidelinesMarker)
	return l.Respond(ctx, prompt, query)
}

// OfflineResponder answers without a model: it hands back the facts
// the loop computed, verbatim. Used when no API key is configured.
func OfflineResponder() Responder {
	return func(ctx context.Context, systemPrompt, query string) (string, error) {
		facts := systemPrompt
		if i := strings.Index(facts, contextMarker); i >= 0 {
			facts = facts[i+len(contextMarker):]
		}
		if i := strings.Index(facts, guidelinesMarker); i >= 0 {
			facts = facts[:i]
		}
		return strings.TrimSpace(facts), nil
	}
}

// Params carries whatever the intent classifier extracted from the
// question.
type Params struct {
	HedgeRatio float64
	Scenario   risknav.Scenario
}

func (p Params) describe(intent Intent) string {
	switch intent {
	case IntentHedge:
		return fmt.Sprintf("Hedge request detected: %.0f%%", p.HedgeRatio*100)
	case IntentStress:
		return fmt.Sprintf("Stress test: %+.0fbp rate, %+.0f%% equity", p.Scenario.RateBP, p.Scenario.EquityPct)
	case IntentLimits:
		return "Limit status check"
	default:
		return "General information query"
	}
}

// Classify reads the intent and its parameters off the question with
// plain keyword matching. Anything it cannot place becomes a general
// query answered from the snapshot summary.
func Classify(query string) (Intent, Params) {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "hedge", "hedging"):
		ratio := 0.70
		if pct, ok := extractPercent(q); ok {
			ratio = pct
		}
		return IntentHedge, Params{HedgeRatio: ratio}

	case containsAny(q, "stress", "scenario", "shock", "crisis", "what if"):
		sc := risknav.Scenario{Name: "Custom", RateBP: 100, EquityPct: -15}
		if bp, ok := extractBP(q); ok {
			sc.RateBP = bp
		}
		if eq, ok := extractEquityShock(q); ok {
			sc.EquityPct = eq
		}
		return IntentStress, Params{Scenario: sc}

	case containsAny(q, "limit", "breach", "warning", "compliance"):
		return IntentLimits, Params{}
	}
	return IntentQuery, Params{}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

var (
	percentRE = regexp.MustCompile(`(\d+)\s*%`)
	bpRE      = regexp.MustCompile(`(\d+)\s*bp`)
	equityRE  = regexp.MustCompile(`equity.*?(-?\d+)\s*%`)
)

// extractPercent finds "85%" and returns it as a ratio.
func extractPercent(s string) (float64, bool) {
	m := percentRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return float64(v) / 100, true
}

// extractBP finds "150bp" and returns the basis points.
func extractBP(s string) (float64, bool) {
	m := bpRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return float64(v), true
}

// extractEquityShock finds "equity down 15%" or "equity -15%". A bare
// magnitude is read as a drop.
func extractEquityShock(s string) (float64, bool) {
	m := equityRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if v > 0 {
		v = -v
	}
	return float64(v), true
}

func stressContext(r *risknav.StressResult) string {
	return fmt.Sprintf("Stress result: funded %s -> %s, surplus %s, assets %s, liabilities %s",
		risknav.FormatPercent(r.Baseline.FundedStatus(), 1),
		risknav.FormatPercent(r.StressedFunded(), 1),
		risknav.Abbreviate(r.StressedSurplus(), "$", "", 1),
		risknav.Abbreviate(r.StressedAssets(), "$", "", 1),
		risknav.Abbreviate(r.StressedLiabilities(), "$", "", 1),
	)
}

func limitContext(s *risknav.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Limit table (%d breach, %d warning):\n", s.Breaches(), s.Warnings())
	for _, l := range s.Limits() {
		fmt.Fprintf(&b, "- %s: %s -> %s\n", l.Name, risknav.FormatPercent(l.Current, 1), l.Status)
	}
	return b.String()
}
