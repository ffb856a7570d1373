package risknav

import "sort"

// Scenario is a linear factor shock: a parallel rate move in basis
// points, an equity market move in percent, and an inflation expectation
// move in percent.
type Scenario struct {
	Name         string
	RateBP       float64
	EquityPct    float64
	InflationPct float64
}

// Shock input bounds. User-supplied shocks are clamped to the range the
// linear sensitivities stay meaningful in.
const (
	MaxRateBP       = 200
	MaxEquityPct    = 50
	MaxInflationPct = 3
)

// Scenarios is the preset table of the Stress Testing tab. Custom comes
// first and is the zero shock.
var Scenarios = []Scenario{
	{Name: "Custom"},
	{Name: "2008 Financial Crisis", RateBP: 50, EquityPct: -40, InflationPct: -1.0},
	{Name: "Stagflation", RateBP: 100, EquityPct: -15, InflationPct: 3.0},
	{Name: "Rate Hike Shock", RateBP: 150, EquityPct: -10, InflationPct: 0.5},
	{Name: "Market Rally", RateBP: -25, EquityPct: 20, InflationPct: 0.5},
	{Name: "Deflation Scare", RateBP: -50, EquityPct: -10, InflationPct: -2.0},
}

// ScenarioByName returns the preset of that name.
func ScenarioByName(name string) (Scenario, bool) {
	for _, sc := range Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// Clamp bounds each shock to its allowed range.
func (sc Scenario) Clamp() Scenario {
	sc.RateBP = clamp(sc.RateBP, -MaxRateBP, MaxRateBP)
	sc.EquityPct = clamp(sc.EquityPct, -MaxEquityPct, MaxEquityPct)
	sc.InflationPct = clamp(sc.InflationPct, -MaxInflationPct, MaxInflationPct)
	return sc
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsZero reports whether the scenario applies no shock.
func (sc Scenario) IsZero() bool {
	return sc.RateBP == 0 && sc.EquityPct == 0 && sc.InflationPct == 0
}

// PnL returns the scenario's profit and loss on one position. The shock
// applies to market exposure, so derivatives are hit on their notional:
//
//	pnl = exposure * (-duration*rate/10000 + beta*equity/100 + infBeta*inflation/100)
func (sc Scenario) PnL(p Position) float64 {
	shock := -p.Duration*sc.RateBP/10000 +
		p.EquityBeta*sc.EquityPct/100 +
		p.InflationBeta*sc.InflationPct/100
	return p.Exposure.AsFloat() * shock
}

// StressResult is the snapshot re-priced under a scenario.
type StressResult struct {
	Scenario Scenario
	Baseline *Snapshot

	stressedAssets      float64
	stressedLiabilities float64
}

// Stress re-prices the day's positions under the scenario. The baseline
// snapshot is kept so every output can be reported as a delta.
func (s *Snapshot) Stress(sc Scenario) *StressResult {
	sc = sc.Clamp()
	r := &StressResult{Scenario: sc, Baseline: s}
	for _, p := range s.day {
		stressed := p.MTM.AsFloat() + sc.PnL(p)
		if p.IsAsset() {
			r.stressedAssets += stressed
		} else {
			r.stressedLiabilities += stressed
		}
	}
	// Liability MTM is negative; report the absolute value.
	if r.stressedLiabilities < 0 {
		r.stressedLiabilities = -r.stressedLiabilities
	}
	return r
}

// StressedAssets returns the asset total under the scenario.
func (r *StressResult) StressedAssets() float64 { return r.stressedAssets }

// StressedLiabilities returns the absolute liability total under the scenario.
func (r *StressResult) StressedLiabilities() float64 { return r.stressedLiabilities }

// StressedSurplus returns stressed assets minus stressed liabilities.
func (r *StressResult) StressedSurplus() float64 {
	return r.stressedAssets - r.stressedLiabilities
}

// StressedFunded returns the stressed funded status, zero when the
// stressed liabilities vanish.
func (r *StressResult) StressedFunded() float64 {
	if r.stressedLiabilities == 0 {
		return 0
	}
	return r.stressedAssets / r.stressedLiabilities
}

// Deltas against baseline.

func (r *StressResult) DeltaAssets() float64 {
	return r.stressedAssets - r.Baseline.TotalAssets().AsFloat()
}

func (r *StressResult) DeltaLiabilities() float64 {
	return r.stressedLiabilities - r.Baseline.TotalLiabilities().AsFloat()
}

func (r *StressResult) DeltaSurplus() float64 {
	return r.StressedSurplus() - r.Baseline.Surplus().AsFloat()
}

func (r *StressResult) DeltaFunded() float64 {
	return r.StressedFunded() - r.Baseline.FundedStatus()
}

// WaterfallStage is one bar of the P&L waterfall over assets.
type WaterfallStage struct {
	Label string
	Value float64
	Kind  string // "absolute", "relative" or "total"
}

// Waterfall decomposes the asset-side P&L by factor: baseline, the three
// factor contributions, and the stressed total.
func (r *StressResult) Waterfall() []WaterfallStage {
	var ratePnL, equityPnL, inflationPnL float64
	for p := range r.Baseline.assets() {
		exp := p.Exposure.AsFloat()
		ratePnL += exp * (-p.Duration * r.Scenario.RateBP / 10000)
		equityPnL += exp * (p.EquityBeta * r.Scenario.EquityPct / 100)
		inflationPnL += exp * (p.InflationBeta * r.Scenario.InflationPct / 100)
	}
	return []WaterfallStage{
		{Label: "Baseline", Value: r.Baseline.TotalAssets().AsFloat(), Kind: "absolute"},
		{Label: "Rate", Value: ratePnL, Kind: "relative"},
		{Label: "Equity", Value: equityPnL, Kind: "relative"},
		{Label: "Inflation", Value: inflationPnL, Kind: "relative"},
		{Label: "Final", Value: r.stressedAssets, Kind: "total"},
	}
}

// Mover is one row of the top-movers table.
type Mover struct {
	Name     string
	Class    string
	Baseline Money
	Stressed float64
	PnL      float64
	PnLPct   float64
}

// TopMovers returns the n best and n worst asset positions by scenario
// P&L, best first.
func (r *StressResult) TopMovers(n int) []Mover {
	movers := make([]Mover, 0, len(r.Baseline.day))
	for p := range r.Baseline.assets() {
		pnl := r.Scenario.PnL(p)
		m := Mover{
			Name:     p.Name,
			Class:    p.Class,
			Baseline: p.MTM,
			Stressed: p.MTM.AsFloat() + pnl,
			PnL:      pnl,
		}
		if base := p.MTM.Abs().AsFloat(); base != 0 {
			m.PnLPct = pnl / base * 100
		}
		movers = append(movers, m)
	}
	sort.Slice(movers, func(i, j int) bool { return movers[i].PnL > movers[j].PnL })
	if len(movers) <= 2*n {
		return movers
	}
	top := make([]Mover, 0, 2*n)
	top = append(top, movers[:n]...)
	top = append(top, movers[len(movers)-n:]...)
	return top
}
