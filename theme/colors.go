// Package theme holds the visual identity of the risk dashboard: the
// hybrid palette (dark sidebar, light content area), per-asset-class
// colors, the chart cycle, and the generated stylesheet.
package theme

import (
	"github.com/lakefield/risknav"
)

// Hybrid palette. The sidebar is dark slate, the content area light,
// and the accent is the Lakefield brand green.
const (
	SidebarBg        = "#0f172a"
	SidebarText      = "#e2e8f0"
	SidebarTextMuted = "#94a3b8"
	SidebarBorder    = "#1e293b"

	PageBg      = "#f8fafc"
	CardBg      = "#ffffff"
	HoverBg     = "#f1f5f9"
	BorderColor = "#e2e8f0"

	TextPrimary   = "#1e293b"
	TextSecondary = "#475569"
	TextTertiary  = "#64748b"

	Positive = "#00843D"
	Negative = "#dc2626"
	Warning  = "#f59e0b"
	Info     = "#0284c7"

	Accent      = "#00843D"
	AccentLight = "#00a34a"
	AccentBg    = "rgba(0, 132, 61, 0.1)"
)

// AssetColors maps each asset class to its fixed chart color, so a
// class keeps the same color across every view.
var AssetColors = map[string]string{
	"Fixed Income":           "#0284c7",
	"Public Equities":        "#00843D",
	"Private Real Estate":    "#f59e0b",
	"Private Infrastructure": "#7c3aed",
	"Private Credit":         "#db2777",
	"Cash & Funding":         "#64748b",
}

// ChartColors is the default series cycle for charts whose categories
// are not asset classes.
var ChartColors = []string{"#00843D", "#0284c7", "#7c3aed", "#f59e0b", "#db2777", "#64748b"}

// AssetColor returns the fixed color of an asset class, falling back
// to the accent for unknown classes.
func AssetColor(class string) string {
	if c, ok := AssetColors[class]; ok {
		return c
	}
	return Accent
}

// ChartColor returns the i-th color of the cycle, wrapping around.
func ChartColor(i int) string {
	if i < 0 {
		i = -i
	}
	return ChartColors[i%len(ChartColors)]
}

// StatusColor maps a limit status to its semantic color.
func StatusColor(s risknav.Status) string {
	switch s {
	case risknav.StatusBreach:
		return Negative
	case risknav.StatusWarn:
		return Warning
	default:
		return Positive
	}
}

// StatusIcon maps a limit status to the indicator glyph used in
// headlines and summaries.
func StatusIcon(s risknav.Status) string {
	switch s {
	case risknav.StatusBreach:
		return "🔴"
	case risknav.StatusWarn:
		return "🟡"
	default:
		return "🟢"
	}
}
