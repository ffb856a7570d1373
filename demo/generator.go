// Package demo produces a deterministic sample book for the risk
// dashboard: ten business days of positions shaped like a large
// Canadian pension plan, plus the matching policy table. The same seed
// always yields the same book, which keeps demos and tests stable.
package demo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lakefield/risknav"
)

// Config controls the generated book.
type Config struct {
	Days       int          // business days to generate, newest being BaseDate
	RowsPerDay int          // approximate asset rows per day
	Seed       int64        // random source seed
	BaseDate   risknav.Date // most recent business day

	TotalAssets      float64 // baseline asset total in CAD
	TotalLiabilities float64 // fixed actuarial liability total in CAD
	DriftSigma       float64 // stddev of the daily asset drift

	// On BreachDate the FX forward hedge is partially unwound, which
	// pushes the net FX exposure over its limit. Leave BreachDate zero
	// to generate a clean history.
	BreachDate   risknav.Date
	BreachRetain float64 // fraction of the hedge retained on BreachDate
}

// DefaultConfig returns the standard demo setup: a 124B CAD fund
// against 110.8B of obligations, with an FX limit breach three
// business days before the base date.
func DefaultConfig() Config {
	return Config{
		Days:             10,
		RowsPerDay:       200,
		Seed:             42,
		BaseDate:         risknav.NewDate(2026, 1, 30),
		TotalAssets:      124e9,
		TotalLiabilities: 110.8e9,
		DriftSigma:       0.00316,
		BreachDate:       risknav.NewDate(2026, 1, 27),
		BreachRetain:     0.86,
	}
}

// profile describes one slice of the strategic asset mix: its target
// weight, risk sensitivities, leverage (exposure over MTM) and the
// unhedged share of its currency exposure.
type profile struct {
	class, sub, sector      string
	geo, country, currency  string
	weight                  float64
	duration, inflationBeta float64
	equityBeta              float64
	leverage, fxRatio       float64
}

var profiles = []profile{
	// liability hedging
	{"Fixed Income", "Nominal Bonds", "Government", "North America", "Canada", "CAD", 0.30, 8.0, 0.0, 0.0, 1.0, 0.1},
	{"Fixed Income", "Real Return Bonds", "Government", "North America", "Canada", "CAD", 0.12, 14.0, 1.0, 0.0, 1.0, 0.0},
	// return seeking
	{"Public Equities", "Developed Markets", "Info Tech", "North America", "USA", "USD", 0.15, 0.0, 0.1, 1.2, 1.0, 1.0},
	{"Public Equities", "Developed Markets", "Financials", "Europe", "UK", "GBP", 0.10, 0.0, 0.1, 1.0, 1.0, 0.5},
	{"Public Equities", "Emerging Markets", "Consumer", "APAC", "S.Korea", "KRW", 0.08, 0.0, 0.3, 1.1, 1.0, 1.0},
	// futures carry no FX risk of their own, the hedge is separate
	{"Public Equities", "Derivatives (Futures)", "Multi", "North America", "USA", "USD", 0.05, 0.0, 0.0, 1.0, 20.0, 0.0},
	// inflation sensitive
	{"Private Real Estate", "Global RE", "Real Estate", "North America", "Canada", "CAD", 0.18, 0.0, 0.6, 0.4, 1.0, 0.2},
	{"Private Infrastructure", "Renewables", "Utilities", "Europe", "Germany", "EUR", 0.07, 0.0, 0.5, 0.3, 1.0, 0.3},
	// credit and funding
	{"Private Credit", "Direct Lending", "Financials", "North America", "USA", "USD", 0.07, 4.0, 0.0, 0.2, 1.0, 0.0},
	{"Cash & Funding", "FX Forwards", "Multi", "North America", "USA", "USD", -0.12, 0.0, 0.0, 0.0, 2.0, 1.0},
}

// Generate builds the sample book from the config. It is a pure
// function of the config: the same config always returns an identical
// book.
func Generate(cfg Config) *risknav.Book {
	rng := rand.New(rand.NewSource(cfg.Seed))
	dates := risknav.BusinessDaysBack(cfg.BaseDate, cfg.Days)

	// Random walk of the daily asset total, centered so the history
	// wanders around the baseline instead of drifting one way.
	drift := make([]float64, cfg.Days)
	var sum float64
	for i := range drift {
		eps := rng.NormFloat64() * cfg.DriftSigma
		if i == 0 {
			drift[i] = eps
		} else {
			drift[i] = drift[i-1] + eps
		}
		sum += drift[i]
	}
	mean := sum / float64(cfg.Days)
	for i := range drift {
		drift[i] -= mean
	}

	var positions []risknav.Position
	for i, date := range dates {
		dailyTotal := cfg.TotalAssets * (1 + drift[i])
		positions = append(positions, generateAssets(rng, cfg, date, dailyTotal)...)
		positions = append(positions, liabilities(cfg, date)...)
	}

	return risknav.NewBook(positions, Policies())
}

func generateAssets(rng *rand.Rand, cfg Config, date risknav.Date, dailyTotal float64) []risknav.Position {
	var positions []risknav.Position
	for _, pr := range profiles {
		target := dailyTotal * pr.weight
		rows := max(2, int(float64(cfg.RowsPerDay)*math.Abs(pr.weight)))

		esgBase, carbBase := 75.0, 20.0
		switch pr.class {
		case "Private Infrastructure":
			esgBase, carbBase = 85, 5
		case "Private Real Estate":
			esgBase = 85
		}

		for r := 0; r < rows; r++ {
			mtm := (target / float64(rows)) * (1 + rng.NormFloat64()*0.05)
			exposure := mtm * pr.leverage
			fxExposure := exposure * pr.fxRatio
			if date == cfg.BreachDate && pr.sub == "FX Forwards" {
				fxExposure *= cfg.BreachRetain
			}

			positions = append(positions, risknav.Position{
				Date:            date,
				Name:            fmt.Sprintf("%s_%04d", pr.sub, 1000+rng.Intn(9000)),
				Category:        risknav.Asset,
				Class:           pr.class,
				Subclass:        pr.sub,
				Sector:          pr.sector,
				Geography:       pr.geo,
				Country:         pr.country,
				Currency:        pr.currency,
				MTM:             risknav.CAD(round2(mtm)),
				Exposure:        risknav.CAD(round2(exposure)),
				FXExposure:      risknav.CAD(round2(fxExposure)),
				Duration:        round1(pr.duration + rng.NormFloat64()*0.5),
				EquityBeta:      round2(pr.equityBeta + rng.NormFloat64()*0.1),
				InflationBeta:   pr.inflationBeta,
				CarbonIntensity: max(0, round1(carbBase+rng.NormFloat64()*5)),
				ESGScore:        min(100, round1(esgBase+rng.NormFloat64()*8)),
			})
		}
	}
	return positions
}

// liabilities returns the two actuarial obligation rows for a day.
// They are fixed: actuarial liabilities rest on long-term assumptions
// and do not move with daily markets.
func liabilities(cfg Config, date risknav.Date) []risknav.Position {
	half := -(cfg.TotalLiabilities * 0.5)
	row := func(name string, duration, inflationBeta float64) risknav.Position {
		return risknav.Position{
			Date:          date,
			Name:          name,
			Category:      risknav.Liability,
			Class:         "Obligations",
			Subclass:      "Actuarial",
			Sector:        "Social Security",
			Geography:     "North America",
			Country:       "Canada",
			Currency:      "CAD",
			MTM:           risknav.CAD(half),
			Exposure:      risknav.CAD(half),
			FXExposure:    risknav.CAD(0),
			Duration:      duration,
			InflationBeta: inflationBeta,
		}
	}
	return []risknav.Position{
		// active members face a longer COLA horizon, hence the higher
		// inflation sensitivity
		row("Pension_Obligation_Active_Members", 14.5, 0.8),
		row("Pension_Obligation_Retired_Members", 11.2, 0.5),
	}
}

// Policies returns the strategic policy table: the target mix with its
// allowed ranges plus the global FX and funded-status limits.
func Policies() []risknav.Policy {
	return []risknav.Policy{
		{Kind: risknav.AssetMix, Class: "Fixed Income", Target: 0.42, RangeMin: 0.20, RangeMax: 0.75, IssuerLimit: 0.05, SectorLimit: 0.40, Description: "Government and Corporate Bonds"},
		{Kind: risknav.AssetMix, Class: "Public Equities", Target: 0.38, RangeMin: 0.20, RangeMax: 0.50, IssuerLimit: 0.05, SectorLimit: 0.25, Description: "Global Developed and EM Stocks"},
		{Kind: risknav.AssetMix, Class: "Private Real Estate", Target: 0.18, RangeMin: 0.00, RangeMax: 0.25, IssuerLimit: 0.10, SectorLimit: 0.30, Description: "Global Real Estate Portfolio"},
		{Kind: risknav.AssetMix, Class: "Private Infrastructure", Target: 0.07, RangeMin: 0.00, RangeMax: 0.25, IssuerLimit: 0.10, SectorLimit: 0.25, Description: "Infrastructure and Essential Services"},
		{Kind: risknav.AssetMix, Class: "Private Credit", Target: 0.07, RangeMin: 0.00, RangeMax: 0.25, IssuerLimit: 0.05, SectorLimit: 0.20, Description: "Corporate and Private Debt"},
		{Kind: risknav.AssetMix, Class: "Cash & Funding", Target: -0.12, RangeMin: -0.50, RangeMax: 0.00, Description: "Repo and Leverage Funding"},
		{Kind: risknav.GlobalLimit, Class: "FX_Net_Exposure", Target: 0.00, RangeMin: 0.00, RangeMax: 0.15, Description: "Total Non-CAD Net Exposure"},
		{Kind: risknav.GlobalLimit, Class: "Funded_Status", Target: 1.11, RangeMin: 1.00, RangeMax: 1.50, Description: "Assets over Actuarial Liabilities"},
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
