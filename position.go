package risknav

// Category splits the plan's rows between the asset side and the
// actuarial liability side.
type Category string

const (
	Asset     Category = "Asset"
	Liability Category = "Liability"
)

// Position is one instrument-day row as exported by the upstream risk
// engine. Monetary fields are in CAD. The liability side stores MTM as a
// negative value; aggregates report it as an absolute amount.
type Position struct {
	Date       Date
	Name       string
	Category   Category
	Class      string
	Subclass   string
	Sector     string
	Geography  string
	Country    string
	Currency   string
	MTM        Money // marked-to-market value
	Exposure   Money // market exposure (notional for derivatives)
	FXExposure Money // unhedged non-CAD exposure

	// Sensitivities, supplied by the engine.
	Duration      float64 // years
	EquityBeta    float64
	InflationBeta float64

	CarbonIntensity float64
	ESGScore        float64

	// Missing lists the numeric columns that were empty in the source
	// row. The decoder keeps such rows (the value defaults to zero) so
	// the data-quality report can account for them.
	Missing []string
}

// IsAsset reports whether the row belongs to the asset side of the plan.
func (p Position) IsAsset() bool { return p.Category == Asset }

// IsMissing reports whether the named column was empty in the source row.
func (p Position) IsMissing(column string) bool {
	for _, m := range p.Missing {
		if m == column {
			return true
		}
	}
	return false
}

// PolicyKind distinguishes per-class asset-mix rows from fund-wide limits.
type PolicyKind string

const (
	AssetMix    PolicyKind = "Asset_Mix"
	GlobalLimit PolicyKind = "Global_Limit"
)

// Policy is one row of the plan's Investment Policy & Guidelines table:
// a target weight and an allowed range for an asset class, or a global
// limit such as net FX exposure.
type Policy struct {
	Kind        PolicyKind
	Class       string
	Target      float64
	RangeMin    float64
	RangeMax    float64
	IssuerLimit float64
	SectorLimit float64
	Description string
}
