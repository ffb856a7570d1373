package risknav

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Snapshot is a view of the fund on a single publication date. It is a
// stateless calculator over the book: every method derives its value from
// the day's positions and never mutates them.
type Snapshot struct {
	book *Book
	on   Date
	day  []Position
}

// Compute builds the snapshot of the book on the given date. A date with
// no published positions yields a snapshot whose aggregates are all zero.
func Compute(book *Book, on Date) *Snapshot {
	return &Snapshot{book: book, on: on, day: book.On(on)}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Book returns the book the snapshot was computed from.
func (s *Snapshot) Book() *Book { return s.book }

// Positions returns the day's position rows.
func (s *Snapshot) Positions() []Position { return s.day }

func (s *Snapshot) assets() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range s.day {
			if p.IsAsset() && !yield(p) {
				return
			}
		}
	}
}

func (s *Snapshot) liabilities() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range s.day {
			if !p.IsAsset() && !yield(p) {
				return
			}
		}
	}
}

// TotalAssets returns the marked-to-market value of the asset side.
func (s *Snapshot) TotalAssets() Money {
	total := CAD(0)
	for p := range s.assets() {
		total = total.Add(p.MTM)
	}
	return total
}

// TotalLiabilities returns the actuarial liability as an absolute value.
// Liability MTM is stored negative in the book.
func (s *Snapshot) TotalLiabilities() Money {
	total := CAD(0)
	for p := range s.liabilities() {
		total = total.Add(p.MTM)
	}
	return total.Abs()
}

// Surplus returns assets minus liabilities.
func (s *Snapshot) Surplus() Money {
	return s.TotalAssets().Sub(s.TotalLiabilities())
}

// FundedStatus returns assets over liabilities, or zero when the fund has
// no liabilities on the date.
func (s *Snapshot) FundedStatus() float64 {
	tl := s.TotalLiabilities().AsFloat()
	if tl == 0 {
		return 0
	}
	return s.TotalAssets().AsFloat() / tl
}

// AssetDuration returns the value-weighted duration of the asset side.
func (s *Snapshot) AssetDuration() float64 {
	ta := s.TotalAssets().AsFloat()
	if ta == 0 {
		return 0
	}
	var weighted float64
	for p := range s.assets() {
		weighted += p.Duration * p.MTM.AsFloat()
	}
	return weighted / ta
}

// LiabilityDuration returns the value-weighted duration of the liability
// side, weighting by absolute MTM.
func (s *Snapshot) LiabilityDuration() float64 {
	tl := s.TotalLiabilities().AsFloat()
	if tl == 0 {
		return 0
	}
	var weighted float64
	for p := range s.liabilities() {
		weighted += p.Duration * p.MTM.Abs().AsFloat()
	}
	return weighted / tl
}

// DurationGap returns asset duration minus liability duration. A negative
// gap means liabilities are longer than the assets hedging them.
func (s *Snapshot) DurationGap() float64 {
	return s.AssetDuration() - s.LiabilityDuration()
}

// ClassTotal is the per-class aggregate behind the allocation views.
type ClassTotal struct {
	Class  string
	Value  Money
	Weight float64 // share of total assets
}

// Mix returns per-class asset totals, largest first. Funding classes with
// negative totals are included; chart layers filter them out.
func (s *Snapshot) Mix() []ClassTotal {
	totals := make(map[string]Money)
	var order []string
	for p := range s.assets() {
		if _, ok := totals[p.Class]; !ok {
			order = append(order, p.Class)
		}
		totals[p.Class] = totals[p.Class].Add(p.MTM)
	}
	ta := s.TotalAssets().AsFloat()
	mix := make([]ClassTotal, 0, len(order))
	for _, class := range order {
		ct := ClassTotal{Class: class, Value: totals[class]}
		if ta != 0 {
			ct.Weight = totals[class].AsFloat() / ta
		}
		mix = append(mix, ct)
	}
	sort.SliceStable(mix, func(i, j int) bool { return mix[i].Value.GreaterThan(mix[j].Value) })
	return mix
}

// ClassComparison relates the current weight of an asset class to its
// policy target and allowed range.
type ClassComparison struct {
	Class    string
	Value    Money
	Current  float64
	Target   float64
	RangeMin float64
	RangeMax float64
}

// Comparison joins the day's per-class weights against the asset-mix
// policy rows, in policy-table order. Classes with no positions on the
// date appear with a zero current weight.
func (s *Snapshot) Comparison() []ClassComparison {
	weights := make(map[string]ClassTotal)
	for _, ct := range s.Mix() {
		weights[ct.Class] = ct
	}
	policies := s.book.AssetMixPolicies()
	comp := make([]ClassComparison, 0, len(policies))
	for _, pol := range policies {
		ct := weights[pol.Class]
		comp = append(comp, ClassComparison{
			Class:    pol.Class,
			Value:    ct.Value,
			Current:  ct.Weight,
			Target:   pol.Target,
			RangeMin: pol.RangeMin,
			RangeMax: pol.RangeMax,
		})
	}
	return comp
}

// FXExposure returns the net FX exposure of the asset side and its share
// of total assets.
func (s *Snapshot) FXExposure() (Money, float64) {
	net := CAD(0)
	for p := range s.assets() {
		net = net.Add(p.FXExposure)
	}
	ta := s.TotalAssets().AsFloat()
	if ta == 0 {
		return net, 0
	}
	return net, net.AsFloat() / ta
}

// Limits returns the traffic-light table: one row per asset-mix class
// plus the FX and funded-status global limits.
func (s *Snapshot) Limits() []LimitRow {
	comp := s.Comparison()
	rows := make([]LimitRow, 0, len(comp)+2)
	for _, c := range comp {
		rows = append(rows, LimitRow{
			Name:     c.Class,
			Current:  c.Current,
			Target:   c.Target,
			RangeMin: c.RangeMin,
			RangeMax: c.RangeMax,
			Status:   rangeStatus(c.Current, c.RangeMin, c.RangeMax),
		})
	}
	_, fxPct := s.FXExposure()
	rows = append(rows, LimitRow{
		Name:     "FX Net Exposure",
		Current:  fxPct,
		RangeMax: FXLimit,
		Status:   fxStatus(fxPct),
	})
	fs := s.FundedStatus()
	rows = append(rows, LimitRow{
		Name:     "Funded Status",
		Current:  fs,
		Target:   FundedTarget,
		RangeMin: FundedMin,
		RangeMax: FundedMax,
		Status:   fundedStatusOf(fs),
	})
	return rows
}

// Breaches counts the BREACH rows of the limit table.
func (s *Snapshot) Breaches() int { return s.countLimits(StatusBreach) }

// Warnings counts the WARN rows of the limit table.
func (s *Snapshot) Warnings() int { return s.countLimits(StatusWarn) }

func (s *Snapshot) countLimits(status Status) int {
	n := 0
	for _, row := range s.Limits() {
		if row.Status == status {
			n++
		}
	}
	return n
}

// TopIssuers returns the n largest issuers by MTM, each evaluated against
// the single-issuer limit.
func (s *Snapshot) TopIssuers(n int) []IssuerRow {
	totals := make(map[string]Money)
	for p := range s.assets() {
		totals[p.Name] = totals[p.Name].Add(p.MTM)
	}
	issuers := make([]IssuerRow, 0, len(totals))
	ta := s.TotalAssets().AsFloat()
	for name, value := range totals {
		row := IssuerRow{Issuer: name, Value: value}
		if ta != 0 {
			row.Weight = value.AsFloat() / ta
		}
		row.Status = issuerStatus(row.Weight)
		issuers = append(issuers, row)
	}
	sort.Slice(issuers, func(i, j int) bool {
		if issuers[i].Value.Equal(issuers[j].Value) {
			return issuers[i].Issuer < issuers[j].Issuer
		}
		return issuers[i].Value.GreaterThan(issuers[j].Value)
	})
	if len(issuers) > n {
		issuers = issuers[:n]
	}
	return issuers
}

// Summary serialises the snapshot as the plain-text fund brief handed to
// the copilot's system instruction.
func (s *Snapshot) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Lakefield Fund Snapshot (%s) ---\n", s.on)
	fmt.Fprintf(&b, "Funded Status: %.1f%% (target: 111%%, range: 100%%-150%%)\n", s.FundedStatus()*100)
	fmt.Fprintf(&b, "Net Surplus: %s\n", s.Surplus().Abbrev(1))
	fmt.Fprintf(&b, "Total Assets: %s | Total Liabilities: %s\n", s.TotalAssets().Abbrev(1), s.TotalLiabilities().Abbrev(1))
	fmt.Fprintf(&b, "Asset Duration: %.1f yrs | Liability Duration: %.1f yrs | Gap: %.1f yrs\n\n",
		s.AssetDuration(), s.LiabilityDuration(), s.DurationGap())

	b.WriteString("Asset Mix vs Policy:\n")
	for _, c := range s.Comparison() {
		ok := "OK"
		if c.Current < c.RangeMin || c.Current > c.RangeMax {
			ok = "BREACH"
		}
		fmt.Fprintf(&b, "  %-28s actual %6.1f%% | target %5.0f%% | range [%.0f%%, %.0f%%] -> %s\n",
			c.Class, c.Current*100, c.Target*100, c.RangeMin*100, c.RangeMax*100, ok)
	}

	_, fxPct := s.FXExposure()
	b.WriteString("\nLimit Status:\n")
	fmt.Fprintf(&b, "  FX Net Exposure: %.1f%% (limit: 15%%) -> %s\n", fxPct*100, fxStatus(fxPct))
	topWeight := 0.0
	if top := s.TopIssuers(1); len(top) > 0 {
		topWeight = top[0].Weight
	}
	fmt.Fprintf(&b, "  Top Issuer Concentration: %.2f%% (limit: 5%%) -> %s\n", topWeight*100, issuerStatus(topWeight))

	series := s.book.Series()
	if len(series) > 1 {
		fmt.Fprintf(&b, "\n%d-Day Trend:\n", len(series))
		fmt.Fprintf(&b, "  Funded Status:      %s\n", trend(series, func(pt SeriesPoint) float64 { return pt.FundedStatus }))
		fmt.Fprintf(&b, "  FX Exposure:        %s\n", trend(series, func(pt SeriesPoint) float64 { return pt.FXPct }))
		fmt.Fprintf(&b, "  Fixed Income w:     %s\n", trend(series, func(pt SeriesPoint) float64 { return pt.WFixedIncome }))
		fmt.Fprintf(&b, "  Public Equities w:  %s\n", trend(series, func(pt SeriesPoint) float64 { return pt.WPublicEquities }))
		fmt.Fprintf(&b, "  Private RE w:       %s\n", trend(series, func(pt SeriesPoint) float64 { return pt.WRealEstate }))
	}
	return b.String()
}

func trend(series []SeriesPoint, value func(SeriesPoint) float64) string {
	parts := make([]string, 0, len(series))
	for _, pt := range series {
		parts = append(parts, fmt.Sprintf("%.1f%%", value(pt)*100))
	}
	return strings.Join(parts, " -> ")
}
