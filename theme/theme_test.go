package theme

import (
	"strings"
	"testing"

	"github.com/lakefield/risknav"
)

func TestAssetColor(t *testing.T) {
	if got := AssetColor("Fixed Income"); got != "#0284c7" {
		t.Errorf("AssetColor(Fixed Income) = %q, want #0284c7", got)
	}
	if got := AssetColor("Public Equities"); got != Accent {
		t.Errorf("AssetColor(Public Equities) = %q, want accent %q", got, Accent)
	}
	// Unknown classes fall back to the accent instead of panicking.
	if got := AssetColor("Crypto"); got != Accent {
		t.Errorf("AssetColor(Crypto) = %q, want accent %q", got, Accent)
	}
}

func TestChartColor_Wraps(t *testing.T) {
	n := len(ChartColors)
	for i := 0; i < n; i++ {
		if ChartColor(i) != ChartColor(i+n) {
			t.Errorf("ChartColor(%d) != ChartColor(%d)", i, i+n)
		}
	}
	if ChartColor(0) != ChartColors[0] {
		t.Errorf("ChartColor(0) = %q, want %q", ChartColor(0), ChartColors[0])
	}
	// Negative indexes must not panic.
	_ = ChartColor(-1)
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status risknav.Status
		want   string
	}{
		{risknav.StatusOK, Positive},
		{risknav.StatusWarn, Warning},
		{risknav.StatusBreach, Negative},
	}
	for _, tc := range tests {
		if got := StatusColor(tc.status); got != tc.want {
			t.Errorf("StatusColor(%v) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestCSS(t *testing.T) {
	css := CSS()

	for _, want := range []string{
		"--sidebar-bg: " + SidebarBg,
		"--bg-page: " + PageBg,
		"--accent: " + Accent,
		".badge.breach",
		".section-header",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS() missing %q", want)
		}
	}

	// The stylesheet is generated, not stateful.
	if CSS() != css {
		t.Error("CSS() is not deterministic")
	}
}
