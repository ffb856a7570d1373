package risknav

import "fmt"

// Magnitude thresholds for abbreviation. Monotonic: a larger magnitude
// never abbreviates to a smaller unit.
const (
	thousand = 1e3
	million  = 1e6
	billion  = 1e9
	trillion = 1e12
)

// Abbreviate formats a number with an automatic K/M/B/T unit, e.g.
// Abbreviate(124e9, "$", "", 1) is "$124.0B". The prefix comes before the
// sign, matching how the figures read on the dashboard cards.
func Abbreviate(value float64, prefix, suffix string, decimals int) string {
	abs := value
	sign := ""
	if value < 0 {
		abs = -value
		sign = "-"
	}

	var formatted string
	switch {
	case abs >= trillion:
		formatted = fmt.Sprintf("%.*fT", decimals, abs/trillion)
	case abs >= billion:
		formatted = fmt.Sprintf("%.*fB", decimals, abs/billion)
	case abs >= million:
		formatted = fmt.Sprintf("%.*fM", decimals, abs/million)
	case abs >= thousand:
		formatted = fmt.Sprintf("%.*fK", decimals, abs/thousand)
	default:
		formatted = fmt.Sprintf("%.*f", decimals, abs)
	}

	return prefix + sign + formatted + suffix
}

// FormatPercent renders a fraction as a percentage: FormatPercent(0.155, 1)
// is "15.5%".
func FormatPercent(ratio float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, ratio*100)
}

// FormatDelta is Abbreviate with an explicit sign for change values.
// Zero is positive: "+0.00".
func FormatDelta(value float64, prefix, suffix string, decimals int) string {
	sign := ""
	if value >= 0 {
		sign = "+"
	}
	return sign + Abbreviate(value, prefix, suffix, decimals)
}
