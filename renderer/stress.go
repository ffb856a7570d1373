package renderer

import (
	"fmt"
	"io"

	"github.com/lakefield/risknav"
)

// RenderStress writes the stress test report: the shocked KPIs against
// the baseline, the surplus waterfall, and the biggest movers.
func RenderStress(w io.Writer, r *risknav.StressResult) {
	s := r.Baseline
	sc := r.Scenario
	fmt.Fprintf(w, "# Stress Test on %s\n\n", s.On())
	fmt.Fprintf(w, "Scenario: **%s** (rates %+.0fbp, equities %+.0f%%, inflation %+.1f%%)\n\n",
		sc.Name, sc.RateBP, sc.EquityPct, sc.InflationPct)

	fmt.Fprintln(w, "| Metric | Baseline | Stressed | Change |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|")
	printRow := func(label, baseline, stressed, change string) {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n", label, baseline, stressed, change)
	}
	printRow("Total Assets",
		s.TotalAssets().Abbrev(1),
		risknav.Abbreviate(r.StressedAssets(), "$", "", 1),
		risknav.FormatDelta(r.DeltaAssets(), "$", "", 1))
	printRow("Total Liabilities",
		s.TotalLiabilities().Abbrev(1),
		risknav.Abbreviate(r.StressedLiabilities(), "$", "", 1),
		risknav.FormatDelta(r.DeltaLiabilities(), "$", "", 1))
	printRow("Net Surplus",
		s.Surplus().SignedAbbrev(1),
		risknav.Abbreviate(r.StressedSurplus(), "$", "", 1),
		risknav.FormatDelta(r.DeltaSurplus(), "$", "", 1))
	printRow("Funded Status",
		risknav.FormatPercent(s.FundedStatus(), 1),
		risknav.FormatPercent(r.StressedFunded(), 1),
		fmt.Sprintf("%+.1fpp", r.DeltaFunded()*100))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "## Surplus Waterfall")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Stage | Impact |")
	fmt.Fprintln(w, "|:---|---:|")
	for _, stage := range r.Waterfall() {
		if stage.Kind == "relative" {
			fmt.Fprintf(w, "| %s | %s |\n", stage.Label, risknav.FormatDelta(stage.Value, "$", "", 1))
		} else {
			fmt.Fprintf(w, "| **%s** | **%s** |\n", stage.Label, risknav.Abbreviate(stage.Value, "$", "", 1))
		}
	}
	fmt.Fprintln(w, "")

	movers := r.TopMovers(5)
	if len(movers) == 0 {
		return
	}
	fmt.Fprintln(w, "## Top Movers")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Position | Class | Baseline | P&L | P&L % |")
	fmt.Fprintln(w, "|:---|:---|---:|---:|---:|")
	for _, m := range movers {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			m.Name, m.Class,
			m.Baseline.Abbrev(1),
			risknav.FormatDelta(m.PnL, "$", "", 1),
			fmt.Sprintf("%+.1f%%", m.PnLPct),
		)
	}
	fmt.Fprintln(w, "")
}
