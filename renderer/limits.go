package renderer

import (
	"fmt"
	"io"

	"github.com/lakefield/risknav"
)

// RenderLimits writes the limit monitor report: every policy limit
// with its status, then the issuer concentration table.
func RenderLimits(w io.Writer, s *risknav.Snapshot) {
	fmt.Fprintf(w, "# Limit Monitor on %s\n\n", s.On())

	breaches, warnings := s.Breaches(), s.Warnings()
	switch {
	case breaches > 0:
		fmt.Fprintf(w, "**%d BREACH**", breaches)
		if warnings > 0 {
			fmt.Fprintf(w, ", %d warning(s)", warnings)
		}
		fmt.Fprintln(w, "")
	case warnings > 0:
		fmt.Fprintf(w, "**%d WARNING**\n", warnings)
	default:
		fmt.Fprintln(w, "All limits OK.")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "| Limit | Current | Target | Range | Status |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|:---|")
	for _, l := range s.Limits() {
		printLimitRow(w, l)
	}
	fmt.Fprintln(w, "")

	issuers := s.TopIssuers(5)
	if len(issuers) == 0 {
		return
	}
	fmt.Fprintln(w, "## Issuer Concentration")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Single-issuer limit: %s of total assets.\n\n", risknav.FormatPercent(risknav.IssuerLimit, 0))
	fmt.Fprintln(w, "| Issuer | Value | Weight | Status |")
	fmt.Fprintln(w, "|:---|---:|---:|:---|")
	for _, i := range issuers {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			i.Issuer, i.Value.Abbrev(1), risknav.FormatPercent(i.Weight, 2), statusCell(i.Status))
	}
	fmt.Fprintln(w, "")
}

func printLimitRow(w io.Writer, l risknav.LimitRow) {
	target := "-"
	if l.Target != 0 {
		target = risknav.FormatPercent(l.Target, 0)
	}
	fmt.Fprintf(w, "| %s | %s | %s | %s - %s | %s |\n",
		l.Name,
		risknav.FormatPercent(l.Current, 1),
		target,
		risknav.FormatPercent(l.RangeMin, 0),
		risknav.FormatPercent(l.RangeMax, 0),
		statusCell(l.Status),
	)
}

// statusCell renders a status for a table cell, bolding anything that
// needs attention.
func statusCell(s risknav.Status) string {
	if s == risknav.StatusOK {
		return s.String()
	}
	return fmt.Sprintf("**%s**", s)
}
