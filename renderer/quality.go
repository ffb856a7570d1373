package renderer

import (
	"fmt"
	"io"

	"github.com/lakefield/risknav"
)

// RenderQuality writes the data pipeline report: headline counters,
// per-column checks, daily coverage, and the anomaly details.
func RenderQuality(w io.Writer, r *risknav.QualityReport) {
	fmt.Fprintf(w, "# Data Pipeline as of %s\n\n", r.LastUpdate)
	fmt.Fprintf(w, "Overall: **%s**\n\n", qualityLabel(r.Status()))

	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|:---|---:|")
	fmt.Fprintf(w, "| Records | %d |\n", r.Records)
	fmt.Fprintf(w, "| Missing Cells | %d (%.2f%%) |\n", r.Missing, r.MissingRate)
	fmt.Fprintf(w, "| Anomalies | %d |\n", r.Anomalies)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "## Column Checks")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Column | Missing | Missing % | Anomalies | Status |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|:---|")
	for _, c := range r.Columns {
		fmt.Fprintf(w, "| %s | %d | %.2f%% | %d | %s |\n",
			c.Column, c.Missing, c.MissingPct, c.Anomalies, qualityLabel(c.Status))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "## Daily Coverage")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Date | Records | Expected |")
	fmt.Fprintln(w, "|:---|---:|---:|")
	for _, c := range r.Coverage {
		fmt.Fprintf(w, "| %s | %d | %d |\n", c.Date, c.Records, c.Expected)
	}
	fmt.Fprintln(w, "")

	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintln(w, "## Anomaly Details")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "| Date | Column | Value | Rule |")
		fmt.Fprintln(w, "|:---|:---|---:|:---|")
		for _, a := range r.Details {
			fmt.Fprintf(w, "| %s | %s | %.2f | %s |\n", a.Date, a.Column, a.Value, a.Rule)
		}
		fmt.Fprintln(w, "")
		return len(r.Details) > 0
	})
}

// qualityLabel names the pipeline statuses the way operators read
// them: a breach of a data check is an ISSUE, not a limit breach.
func qualityLabel(s risknav.Status) string {
	if s == risknav.StatusBreach {
		return "ISSUE"
	}
	return s.String()
}
