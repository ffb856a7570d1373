package agent

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/docs"
	"github.com/lakefield/risknav/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a pension-fund risk officer. He wants precise figures about the fund's
			funded status, its policy limits, and what market scenarios would do to the surplus.
			Never invent a number: every figure must come from an expert's tools.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewRiskAnalyst builds the expert that owns the fund's book. All of
// its tools compute from the book directly, so every number it quotes
// is a real one.
func NewRiskAnalyst(book *risknav.Book) *Expert {
	lib := analystLibrary(book)
	return &Expert{
		Name: "RiskAnalyst",
		Description: `This is the risk analyst. He owns the fund's position book and the policy table.
		He can compute the fund's KPIs, the limit statuses, issuer concentration, and run stress scenarios.
		Ask him whenever a precise figure about the fund is needed.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the risk analyst of a defined-benefit pension fund.
				You know how to use the Tools to extract every figure about the fund:
				  - fund_metrics for the headline KPIs
				  - limit_status for the policy limit table
				  - issuer_concentration for the largest issuers
				  - run_stress for scenario shocks
				  - propose_hedge to audit an FX hedge proposal against the compliance limits
				Answer with the tool output, never from memory.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func analystLibrary(book *risknav.Book) []Function {
	snapshotOn := func(args map[string]any) (*risknav.Snapshot, error) {
		date, err := parseDate(args, book.LastDate())
		if err != nil {
			return nil, err
		}
		return risknav.Compute(book, date), nil
	}

	fundMetrics := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "fund_metrics",
			Description: `fund_metrics returns the fund's headline KPIs on a given day:
			total assets, total liabilities, net surplus, funded status, durations and FX exposure.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema()},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A plain-text brief of the fund's KPIs.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := snapshotOn(args)
			if err != nil {
				return failure(id, "fund_metrics", err)
			}
			return output(id, "fund_metrics", s.Summary())
		},
	}

	limitStatus := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "limit_status",
			Description: `limit_status returns the full policy limit table on a given day:
			every asset-mix range, the FX exposure limit and the funded-status band, each with
			its OK/WARN/BREACH status, plus the issuer concentration table.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema()},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown limit monitor report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := snapshotOn(args)
			if err != nil {
				return failure(id, "limit_status", err)
			}
			var buf bytes.Buffer
			renderer.RenderLimits(&buf, s)
			return output(id, "limit_status", buf.String())
		},
	}

	issuerConcentration := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "issuer_concentration",
			Description: `issuer_concentration lists the fund's largest issuers by value on a given
			day, with each issuer's weight of total assets checked against the single-issuer limit.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema()},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the top issuers.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := snapshotOn(args)
			if err != nil {
				return failure(id, "issuer_concentration", err)
			}
			var b bytes.Buffer
			fmt.Fprintln(&b, "| Issuer | Value | Weight | Status |")
			fmt.Fprintln(&b, "|:---|---:|---:|:---|")
			for _, i := range s.TopIssuers(5) {
				fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
					i.Issuer, i.Value.Abbrev(1), risknav.FormatPercent(i.Weight, 2), i.Status)
			}
			return output(id, "issuer_concentration", b.String())
		},
	}

	runStress := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "run_stress",
			Description: `run_stress shocks the fund with a market scenario and reports the stressed
			KPIs, the surplus waterfall and the biggest movers. Either name a preset scenario
			("2008 Financial Crisis", "Stagflation", "Rate Hike Shock", "Market Rally",
			"Deflation Scare") or give the three shocks directly.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scenario": {
						Type:        genai.TypeString,
						Description: "Name of a preset scenario. Overrides the individual shocks.",
					},
					"rate_bp": {
						Type:        genai.TypeNumber,
						Description: "Interest rate shock in basis points, -200 to +200.",
					},
					"equity_pct": {
						Type:        genai.TypeNumber,
						Description: "Public equity shock in percent, -50 to +50.",
					},
					"inflation_pct": {
						Type:        genai.TypeNumber,
						Description: "Inflation shock in percent, -3 to +3.",
					},
					"date": dateSchema(),
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown stress test report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := snapshotOn(args)
			if err != nil {
				return failure(id, "run_stress", err)
			}
			sc, err := parseScenario(args)
			if err != nil {
				return failure(id, "run_stress", err)
			}
			var buf bytes.Buffer
			renderer.RenderStress(&buf, s.Stress(sc))
			return output(id, "run_stress", buf.String())
		},
	}

	proposeHedge := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "propose_hedge",
			Description: `propose_hedge audits a proposed FX hedge ratio against the compliance
			limits. A ratio above the maximum is refined down to a compliant one. The report
			includes the audit trail and the notional amount the final ratio would hedge.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ratio": {
						Type:        genai.TypeNumber,
						Description: "Proposed fraction of the net FX exposure to hedge, 0 to 1.",
					},
					"date": dateSchema(),
				},
				Required: []string{"ratio"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A plain-text audit report of the hedge proposal.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := snapshotOn(args)
			if err != nil {
				return failure(id, "propose_hedge", err)
			}
			proposed, ok := args["ratio"].(float64)
			if !ok {
				return failure(id, "propose_hedge", fmt.Errorf("ratio is required"))
			}

			ratio, refined, trail := AuditHedge(proposed)
			fx, _ := s.FXExposure()
			notional := risknav.CAD(fx.AsFloat() * ratio)

			var b bytes.Buffer
			for _, step := range trail {
				fmt.Fprintf(&b, "%s: %s (%s)\n", step.Node, step.Message, step.Detail)
			}
			if refined {
				fmt.Fprintf(&b, "Final hedge ratio: %.0f%% (refined from %.0f%%)\n", ratio*100, proposed*100)
			} else {
				fmt.Fprintf(&b, "Final hedge ratio: %.0f%%\n", ratio*100)
			}
			fmt.Fprintf(&b, "Notional hedged: %s of %s net FX exposure\n", notional.Abbrev(1), fx.Abbrev(1))
			return output(id, "propose_hedge", b.String())
		},
	}

	return []Function{fundMetrics, limitStatus, issuerConcentration, runStress, proposeHedge}
}

func dateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeString,
		Description: `The business day to compute on. The book's latest day is the default.
		Otherwise it uses a flexible date format based on YYYY-MM-DD:

		` + must(docs.GetTopic("dates")),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func parseDate(args map[string]any, fallback risknav.Date) (risknav.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return fallback, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return fallback, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := risknav.ParseDate(sdate)
	if err != nil {
		return fallback, fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}

func parseScenario(args map[string]any) (risknav.Scenario, error) {
	if name, ok := args["scenario"].(string); ok && name != "" {
		sc, found := risknav.ScenarioByName(name)
		if !found {
			return risknav.Scenario{}, fmt.Errorf("unknown scenario %q", name)
		}
		return sc, nil
	}
	sc := risknav.Scenario{Name: "Custom"}
	if v, ok := args["rate_bp"].(float64); ok {
		sc.RateBP = v
	}
	if v, ok := args["equity_pct"].(float64); ok {
		sc.EquityPct = v
	}
	if v, ok := args["inflation_pct"].(float64); ok {
		sc.InflationPct = v
	}
	return sc.Clamp(), nil
}

// GeminiResponder adapts the Gemini client into the audit loop's final
// phrasing step.
func GeminiResponder(client *genai.Client) Responder {
	return func(ctx context.Context, systemPrompt, query string) (string, error) {
		e := &Expert{
			Name:      "Responder",
			ModelName: model,
			Config: &genai.GenerateContentConfig{
				SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
			},
		}
		if err := e.Start(ctx, client); err != nil {
			return "", err
		}
		content, err := e.Ask(ctx, &genai.Part{Text: query})
		if err != nil {
			return "", err
		}
		return content.Parts[0].Text, nil
	}
}
