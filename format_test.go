package risknav

import "testing"

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		prefix   string
		suffix   string
		decimals int
		want     string
	}{
		{"zero", 0, "$", "", 1, "$0.0"},
		{"small", 950, "$", "", 0, "$950"},
		{"thousands", 1500, "$", "", 1, "$1.5K"},
		{"millions", 2.5e6, "$", "", 1, "$2.5M"},
		{"billions", 124e9, "$", "", 1, "$124.0B"},
		{"trillions", 1.2e12, "$", "", 2, "$1.20T"},
		{"negative billions", -3.1e9, "$", "", 1, "$-3.1B"},
		{"suffix", 0.5e9, "", " CAD", 1, "500.0M CAD"},
		{"tiny", 0.42, "", "", 2, "0.42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Abbreviate(tt.value, tt.prefix, tt.suffix, tt.decimals)
			if got != tt.want {
				t.Errorf("Abbreviate(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// Larger magnitudes must never abbreviate to a smaller unit.
func TestAbbreviate_MonotonicUnits(t *testing.T) {
	rank := map[byte]int{'K': 1, 'M': 2, 'B': 3, 'T': 4}
	unit := func(v float64) int {
		s := Abbreviate(v, "", "", 0)
		if r, ok := rank[s[len(s)-1]]; ok {
			return r
		}
		return 0
	}
	values := []float64{1, 999, 1e3, 999e3, 1e6, 999e6, 1e9, 999e9, 1e12, 5e13}
	for i := 1; i < len(values); i++ {
		if unit(values[i]) < unit(values[i-1]) {
			t.Errorf("unit rank decreased between %v and %v", values[i-1], values[i])
		}
	}
}

func TestAbbreviate_Deterministic(t *testing.T) {
	// Formatting the same input twice yields the same string.
	for _, v := range []float64{0, -1.5e9, 42e9, 7.77e12} {
		first := Abbreviate(v, "$", "", 1)
		second := Abbreviate(v, "$", "", 1)
		if first != second {
			t.Errorf("Abbreviate(%v) not deterministic: %q != %q", v, first, second)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		ratio    float64
		decimals int
		want     string
	}{
		{0.155, 1, "15.5%"},
		{1.0909, 1, "109.1%"}, // rounds half up
		{0, 2, "0.00%"},
		{-0.031, 1, "-3.1%"},
		{0.123456, 2, "12.35%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.ratio, tt.decimals); got != tt.want {
			t.Errorf("FormatPercent(%v, %d) = %q, want %q", tt.ratio, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1.2e9, "+$1.2B"},
		{-0.5e9, "$-500.0M"},
		{0, "+$0.0"},
	}
	for _, tt := range tests {
		if got := FormatDelta(tt.value, "$", "", 1); got != tt.want {
			t.Errorf("FormatDelta(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestMoneyAbbrev(t *testing.T) {
	if got := CAD(124e9).Abbrev(1); got != "$124.0B" {
		t.Errorf("Abbrev() = %q, want %q", got, "$124.0B")
	}
	if got := CAD(-2.5e9).SignedAbbrev(1); got != "$-2.5B" {
		t.Errorf("SignedAbbrev() = %q, want %q", got, "$-2.5B")
	}
	if got := CAD(0).SignedAbbrev(1); got != "-" {
		t.Errorf("SignedAbbrev(0) = %q, want %q", got, "-")
	}
	if got := CAD(3e9).SignedAbbrev(1); got != "+$3.0B" {
		t.Errorf("SignedAbbrev() = %q, want %q", got, "+$3.0B")
	}
}
