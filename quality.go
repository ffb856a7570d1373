package risknav

import (
	"math"
	"sort"
)

// ExpectedDailyRecords is the record count the upstream export publishes
// per date; the coverage timeline compares each date against it.
const ExpectedDailyRecords = 200

const maxAnomalyDetails = 20

// rangeRule bounds a numeric column to the values the engine can
// legitimately produce. Columns without a rule fall back to a 3-sigma
// z-score check.
type rangeRule struct {
	min, max float64
	desc     string
}

var qualityRules = map[string]rangeRule{
	"mtm_cad":        {-50e9, 50e9, "MTM out of range"},
	"exposure_cad":   {-100e9, 100e9, "Exposure out of range"},
	"duration":       {-5, 30, "Duration out of range"},
	"equity_beta":    {-2, 3, "Beta out of range"},
	"inflation_beta": {-2, 3, "Inflation beta out of range"},
}

// numericColumns lists the checked columns in report order.
var numericColumns = []string{
	"mtm_cad", "exposure_cad", "fx_exposure_cad",
	"duration", "equity_beta", "inflation_beta",
	"carbon_intensity", "esg_score",
}

// columnValue extracts the named numeric column from a position.
func columnValue(p Position, column string) float64 {
	switch column {
	case "mtm_cad":
		return p.MTM.AsFloat()
	case "exposure_cad":
		return p.Exposure.AsFloat()
	case "fx_exposure_cad":
		return p.FXExposure.AsFloat()
	case "duration":
		return p.Duration
	case "equity_beta":
		return p.EquityBeta
	case "inflation_beta":
		return p.InflationBeta
	case "carbon_intensity":
		return p.CarbonIntensity
	case "esg_score":
		return p.ESGScore
	default:
		return math.NaN()
	}
}

// ColumnQuality is one line of the per-column quality table.
type ColumnQuality struct {
	Column     string
	Missing    int
	MissingPct float64
	Anomalies  int
	Status     Status
}

// Anomaly is one flagged value.
type Anomaly struct {
	Date   Date
	Column string
	Value  float64
	Rule   string
}

// Coverage is the record count of one date against the expected volume.
type Coverage struct {
	Date     Date
	Records  int
	Expected int
}

// QualityReport is the Data Pipeline tab: per-column completeness and
// anomaly checks over the whole book, plus the coverage timeline.
type QualityReport struct {
	Records     int
	Missing     int
	MissingRate float64 // over records x checked columns
	Anomalies   int
	LastUpdate  Date
	Columns     []ColumnQuality
	Details     []Anomaly
	Coverage    []Coverage
}

// Quality runs the data-quality checks over the whole book. The checks
// are presentation-grade: range rules for the known columns, a 3-sigma
// fallback for the rest. Engine-level reconciliation stays upstream.
func (b *Book) Quality() *QualityReport {
	report := &QualityReport{Records: b.Len(), LastUpdate: b.LastDate()}

	for _, column := range numericColumns {
		cq := ColumnQuality{Column: column}
		rule, hasRule := qualityRules[column]

		// First pass collects the values and counts missing ones.
		values := make([]float64, 0, b.Len())
		var dates []Date
		for p := range b.Positions() {
			if p.IsMissing(column) {
				cq.Missing++
				continue
			}
			values = append(values, columnValue(p, column))
			dates = append(dates, p.Date)
		}
		if b.Len() > 0 {
			cq.MissingPct = float64(cq.Missing) / float64(b.Len()) * 100
		}

		if hasRule {
			for i, v := range values {
				if v < rule.min || v > rule.max {
					cq.Anomalies++
					report.addDetail(Anomaly{Date: dates[i], Column: column, Value: v, Rule: rule.desc})
				}
			}
		} else if mean, std := meanStd(values); std > 0 {
			for i, v := range values {
				if math.Abs(v-mean)/std > 3 {
					cq.Anomalies++
					report.addDetail(Anomaly{Date: dates[i], Column: column, Value: v, Rule: "Z-score > 3"})
				}
			}
		}

		switch {
		case cq.Missing > 0 || cq.Anomalies > 5:
			cq.Status = StatusBreach
		case cq.Anomalies > 0:
			cq.Status = StatusWarn
		default:
			cq.Status = StatusOK
		}
		report.Missing += cq.Missing
		report.Anomalies += cq.Anomalies
		report.Columns = append(report.Columns, cq)
	}

	if cells := b.Len() * len(numericColumns); cells > 0 {
		report.MissingRate = float64(report.Missing) / float64(cells) * 100
	}

	counts := make(map[Date]int)
	for p := range b.Positions() {
		counts[p.Date]++
	}
	for _, on := range b.Dates() {
		report.Coverage = append(report.Coverage, Coverage{Date: on, Records: counts[on], Expected: ExpectedDailyRecords})
	}
	sort.Slice(report.Details, func(i, j int) bool { return report.Details[i].Date.Before(report.Details[j].Date) })
	return report
}

// Status is the worst status across all checked columns.
func (r *QualityReport) Status() Status {
	worst := StatusOK
	for _, c := range r.Columns {
		if c.Status > worst {
			worst = c.Status
		}
	}
	return worst
}

func (r *QualityReport) addDetail(a Anomaly) {
	if len(r.Details) < maxAnomalyDetails {
		r.Details = append(r.Details, a)
	}
}

func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
