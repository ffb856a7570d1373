package risknav

// SeriesPoint is one date of the fund's history: the headline ratios the
// trend charts draw, plus the asset and liability totals behind them.
type SeriesPoint struct {
	Date            Date
	Assets          Money
	Liabilities     Money
	FundedStatus    float64
	FXPct           float64
	WFixedIncome    float64
	WPublicEquities float64
	WRealEstate     float64
}

// The three liquid classes tracked in the history. Their weights move
// around the policy targets; the other class weights barely move over the
// window and are not worth charting.
const (
	classFixedIncome    = "Fixed Income"
	classPublicEquities = "Public Equities"
	classRealEstate     = "Private Real Estate"
)

// Series computes the per-date history over the whole book, oldest first.
func (b *Book) Series() []SeriesPoint {
	dates := b.Dates()
	series := make([]SeriesPoint, 0, len(dates))
	for _, on := range dates {
		s := Compute(b, on)
		_, fxPct := s.FXExposure()
		pt := SeriesPoint{
			Date:         on,
			Assets:       s.TotalAssets(),
			Liabilities:  s.TotalLiabilities(),
			FundedStatus: s.FundedStatus(),
			FXPct:        fxPct,
		}
		for _, ct := range s.Mix() {
			switch ct.Class {
			case classFixedIncome:
				pt.WFixedIncome = ct.Weight
			case classPublicEquities:
				pt.WPublicEquities = ct.Weight
			case classRealEstate:
				pt.WRealEstate = ct.Weight
			}
		}
		series = append(series, pt)
	}
	return series
}
