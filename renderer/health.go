package renderer

import (
	"fmt"
	"io"

	"github.com/lakefield/risknav"
)

// RenderHealth writes the fund health report: the headline KPIs, the
// asset mix against policy, and the recent funded-status trend.
func RenderHealth(w io.Writer, s *risknav.Snapshot) {
	fmt.Fprintf(w, "# Fund Health on %s\n\n", s.On())

	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|:---|---:|")
	printKPI := func(label, value string) {
		fmt.Fprintf(w, "| %s | %s |\n", label, value)
	}
	printKPI("**Funded Status**", fmt.Sprintf("**%s**", risknav.FormatPercent(s.FundedStatus(), 1)))
	printKPI("Total Assets", s.TotalAssets().Abbrev(1))
	printKPI("Total Liabilities", s.TotalLiabilities().Abbrev(1))
	printKPI("Net Surplus", s.Surplus().SignedAbbrev(1))
	printKPI("Asset Duration", fmt.Sprintf("%.1fy", s.AssetDuration()))
	printKPI("Liability Duration", fmt.Sprintf("%.1fy", s.LiabilityDuration()))
	printKPI("Duration Gap", fmt.Sprintf("%+.1fy", s.DurationGap()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "## Asset Mix vs Policy")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Asset Class | Value | Current | Target | Range |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
	for _, c := range s.Comparison() {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s - %s |\n",
			c.Class,
			c.Value.Abbrev(1),
			risknav.FormatPercent(c.Current, 1),
			risknav.FormatPercent(c.Target, 0),
			risknav.FormatPercent(c.RangeMin, 0),
			risknav.FormatPercent(c.RangeMax, 0),
		)
	}
	fmt.Fprintln(w, "")

	series := s.Book().Series()
	if len(series) < 2 {
		return
	}
	fmt.Fprintf(w, "## %d-Day Trend\n\n", len(series))
	fmt.Fprintln(w, "| Date | Assets | Liabilities | Funded Status |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|")
	for _, pt := range series {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			pt.Date,
			pt.Assets.Abbrev(1),
			pt.Liabilities.Abbrev(1),
			risknav.FormatPercent(pt.FundedStatus, 1),
		)
	}
	fmt.Fprintln(w, "")
}
