package risknav

import "encoding/json"

// JSON wire format of the snapshot API. Field order is fixed by the
// object writer so consuming dashboards can diff payloads.

// MarshalJSON serialises the position in the /api/positions wire shape.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date).
		Append("name", p.Name).
		Append("category", p.Category).
		Append("class", p.Class).
		Optional("subclass", p.Subclass).
		Optional("sector", p.Sector).
		Optional("geography", p.Geography).
		Optional("country", p.Country).
		Optional("currency", p.Currency).
		Append("mtm_cad", p.MTM.AsFloat()).
		Append("exposure_cad", p.Exposure.AsFloat()).
		Append("fx_exposure_cad", p.FXExposure.AsFloat()).
		Append("duration", p.Duration).
		Append("equity_beta", p.EquityBeta).
		Append("inflation_beta", p.InflationBeta).
		Optional("carbon_intensity", p.CarbonIntensity).
		Optional("esg_score", p.ESGScore)
	return w.MarshalJSON()
}

// MarshalJSON serialises the snapshot's KPIs, limit table and issuer
// table: the /api/snapshot payload.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	net, fxPct := s.FXExposure()

	limits := make([]json.Marshaler, 0)
	for _, row := range s.Limits() {
		var w jsonObjectWriter
		w.Append("name", row.Name).
			Append("current", row.Current).
			Optional("target", row.Target).
			Append("range_min", row.RangeMin).
			Append("range_max", row.RangeMax).
			Append("status", row.Status.String())
		limits = append(limits, &w)
	}

	issuers := make([]json.Marshaler, 0)
	for _, row := range s.TopIssuers(5) {
		var w jsonObjectWriter
		w.Append("issuer", row.Issuer).
			Append("value_cad", row.Value.AsFloat()).
			Append("weight", row.Weight).
			Append("status", row.Status.String())
		issuers = append(issuers, &w)
	}

	var w jsonObjectWriter
	w.Append("date", s.on).
		Append("total_assets_cad", s.TotalAssets().AsFloat()).
		Append("total_liabilities_cad", s.TotalLiabilities().AsFloat()).
		Append("surplus_cad", s.Surplus().AsFloat()).
		Append("funded_status", s.FundedStatus()).
		Append("asset_duration", s.AssetDuration()).
		Append("liability_duration", s.LiabilityDuration()).
		Append("duration_gap", s.DurationGap()).
		Append("fx_exposure_cad", net.AsFloat()).
		Append("fx_pct", fxPct).
		Append("limits", limits).
		Append("top_issuers", issuers)
	return w.MarshalJSON()
}

// MarshalJSON serialises one point of the /api/series payload.
func (pt SeriesPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", pt.Date).
		Append("assets_cad", pt.Assets.AsFloat()).
		Append("liabilities_cad", pt.Liabilities.AsFloat()).
		Append("funded_status", pt.FundedStatus).
		Append("fx_pct", pt.FXPct).
		Append("w_fixed_income", pt.WFixedIncome).
		Append("w_public_equities", pt.WPublicEquities).
		Append("w_real_estate", pt.WRealEstate)
	return w.MarshalJSON()
}
