package risknav

// Status is the traffic light of the Limit Monitor tab.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusBreach
)

func (s Status) String() string {
	switch s {
	case StatusWarn:
		return "WARN"
	case StatusBreach:
		return "BREACH"
	default:
		return "OK"
	}
}

// IP&G compliance thresholds. The per-class ranges come from the policy
// table; these are the fund-wide limits.
const (
	FXLimit      = 0.15 // net FX exposure over total assets
	FundedMin    = 1.00
	FundedMax    = 1.50
	FundedTarget = 1.11
	fundedWarn   = 1.05
	IssuerLimit  = 0.05 // single-issuer weight

	// WARN fires inside the range once the weight passes this fraction
	// of the upper bound.
	warnFraction = 0.9
)

// LimitRow is one line of the traffic-light limit table.
type LimitRow struct {
	Name     string
	Current  float64
	Target   float64
	RangeMin float64
	RangeMax float64
	Status   Status
}

// IssuerRow is one line of the single-issuer concentration table.
type IssuerRow struct {
	Issuer string
	Value  Money
	Weight float64
	Status Status
}

// rangeStatus evaluates an asset-class weight against its policy range.
func rangeStatus(current, lo, hi float64) Status {
	if current < lo || current > hi {
		return StatusBreach
	}
	if hi > 0 && current > hi*warnFraction {
		return StatusWarn
	}
	return StatusOK
}

// fxStatus evaluates the net FX share of assets against the 15% limit.
func fxStatus(pct float64) Status {
	switch {
	case pct > FXLimit:
		return StatusBreach
	case pct > FXLimit*warnFraction:
		return StatusWarn
	default:
		return StatusOK
	}
}

// fundedStatusOf evaluates the funded status against the 1.00-1.50 band.
func fundedStatusOf(fs float64) Status {
	switch {
	case fs < FundedMin || fs > FundedMax:
		return StatusBreach
	case fs < fundedWarn:
		return StatusWarn
	default:
		return StatusOK
	}
}

// issuerStatus evaluates a single issuer weight against the 5% limit.
func issuerStatus(weight float64) Status {
	if weight > IssuerLimit {
		return StatusBreach
	}
	return StatusOK
}
