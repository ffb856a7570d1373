package risknav

// Fixture book used across tests. Numbers are chosen round so the
// expected aggregates can be checked by hand:
//
//	2026-01-30 assets  = 6 + 4 + 2          = 12 B
//	2026-01-30 liabs   = 7 + 4              = 11 B (stored negative)
//	funded status      = 12/11              = 1.0909...
//	asset duration     = 8*6/12             = 4.0
//	liability duration = (14.5*7+11.2*4)/11 = 13.3
//	net FX             = 0.6 + 1 + 0.2      = 1.8 B -> 15.0% of assets
func testBook() *Book {
	day := func(on Date, equities float64) []Position {
		return []Position{
			{
				Date: on, Name: "Gov Bond 5Y", Category: Asset,
				Class: "Fixed Income", Subclass: "Nominal Bonds", Sector: "Government",
				Geography: "North America", Country: "Canada", Currency: "CAD",
				MTM: CAD(6e9), Exposure: CAD(6e9), FXExposure: CAD(0.6e9),
				Duration: 8,
			},
			{
				Date: on, Name: "Global Tech Fund", Category: Asset,
				Class: "Public Equities", Subclass: "Developed Markets", Sector: "Info Tech",
				Geography: "North America", Country: "USA", Currency: "USD",
				MTM: CAD(equities), Exposure: CAD(equities), FXExposure: CAD(1e9),
				EquityBeta: 1.2, InflationBeta: 0.1,
			},
			{
				Date: on, Name: "Core RE Pool", Category: Asset,
				Class: "Private Real Estate", Subclass: "Global RE", Sector: "Real Estate",
				Geography: "North America", Country: "Canada", Currency: "CAD",
				MTM: CAD(2e9), Exposure: CAD(2e9), FXExposure: CAD(0.2e9),
				EquityBeta: 0.4, InflationBeta: 0.6,
			},
			{
				Date: on, Name: "Pension Obligation Active", Category: Liability,
				Class: "Obligations", Subclass: "Actuarial", Sector: "Social Security",
				Geography: "North America", Country: "Canada", Currency: "CAD",
				MTM: CAD(-7e9), Exposure: CAD(-7e9),
				Duration: 14.5, InflationBeta: 0.8,
			},
			{
				Date: on, Name: "Pension Obligation Retired", Category: Liability,
				Class: "Obligations", Subclass: "Actuarial", Sector: "Social Security",
				Geography: "North America", Country: "Canada", Currency: "CAD",
				MTM: CAD(-4e9), Exposure: CAD(-4e9),
				Duration: 11.2, InflationBeta: 0.5,
			},
		}
	}

	var positions []Position
	positions = append(positions, day(NewDate(2026, 1, 29), 4.2e9)...)
	positions = append(positions, day(NewDate(2026, 1, 30), 4e9)...)

	policies := []Policy{
		{Kind: AssetMix, Class: "Fixed Income", Target: 0.42, RangeMin: 0.20, RangeMax: 0.75},
		{Kind: AssetMix, Class: "Public Equities", Target: 0.38, RangeMin: 0.20, RangeMax: 0.50},
		{Kind: AssetMix, Class: "Private Real Estate", Target: 0.18, RangeMin: 0, RangeMax: 0.25},
		{Kind: GlobalLimit, Class: "FX_Net_Exposure", RangeMax: 0.15, Description: "Total Non-CAD Net Exposure"},
		{Kind: GlobalLimit, Class: "Funded_Status", Target: 1.11, RangeMin: 1.00, RangeMax: 1.50, Description: "Assets over Actuarial Liabilities"},
	}
	return NewBook(positions, policies)
}

// about compares two floats with a display-grade tolerance.
func about(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
