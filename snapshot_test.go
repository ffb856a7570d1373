package risknav

import (
	"strings"
	"testing"
)

func TestSnapshot_KPIs(t *testing.T) {
	book := testBook()
	s := Compute(book, NewDate(2026, 1, 30))

	if !s.TotalAssets().Equal(CAD(12e9)) {
		t.Errorf("TotalAssets() = %v, want $12B", s.TotalAssets())
	}
	if !s.TotalLiabilities().Equal(CAD(11e9)) {
		t.Errorf("TotalLiabilities() = %v, want $11B (absolute)", s.TotalLiabilities())
	}
	if !s.Surplus().Equal(CAD(1e9)) {
		t.Errorf("Surplus() = %v, want $1B", s.Surplus())
	}
	if got := s.FundedStatus(); !about(got, 12.0/11.0) {
		t.Errorf("FundedStatus() = %v, want %v", got, 12.0/11.0)
	}
	if got := s.AssetDuration(); !about(got, 4.0) {
		t.Errorf("AssetDuration() = %v, want 4.0", got)
	}
	if got := s.LiabilityDuration(); !about(got, (14.5*7+11.2*4)/11) {
		t.Errorf("LiabilityDuration() = %v", got)
	}
	if got := s.DurationGap(); got >= 0 {
		t.Errorf("DurationGap() = %v, want negative (liabilities longer)", got)
	}
}

func TestSnapshot_EmptyDate(t *testing.T) {
	// A date with no published rows reports zero everywhere, never NaN.
	s := Compute(testBook(), NewDate(2026, 2, 15))

	if !s.TotalAssets().IsZero() {
		t.Error("TotalAssets should be zero on a date without positions")
	}
	if got := s.FundedStatus(); got != 0 {
		t.Errorf("FundedStatus() = %v, want 0 on empty date", got)
	}
	if got := s.AssetDuration(); got != 0 {
		t.Errorf("AssetDuration() = %v, want 0 on empty date", got)
	}
	if _, fxPct := s.FXExposure(); fxPct != 0 {
		t.Errorf("FXExposure pct = %v, want 0 on empty date", fxPct)
	}
	if rows := s.TopIssuers(5); len(rows) != 0 {
		t.Errorf("TopIssuers() = %d rows, want none", len(rows))
	}
}

func TestSnapshot_Mix(t *testing.T) {
	s := Compute(testBook(), NewDate(2026, 1, 30))
	mix := s.Mix()
	if len(mix) != 3 {
		t.Fatalf("Mix() returned %d classes, want 3", len(mix))
	}
	// Largest first.
	if mix[0].Class != "Fixed Income" || !about(mix[0].Weight, 0.5) {
		t.Errorf("Mix()[0] = %+v, want Fixed Income at 50%%", mix[0])
	}
	var total float64
	for _, ct := range mix {
		total += ct.Weight
	}
	if !about(total, 1.0) {
		t.Errorf("Mix weights sum to %v, want 1", total)
	}
}

func TestSnapshot_Comparison(t *testing.T) {
	s := Compute(testBook(), NewDate(2026, 1, 30))
	comp := s.Comparison()
	// One row per asset-mix policy, in policy-table order.
	want := []string{"Fixed Income", "Public Equities", "Private Real Estate"}
	if len(comp) != len(want) {
		t.Fatalf("Comparison() returned %d rows, want %d", len(comp), len(want))
	}
	for i, c := range comp {
		if c.Class != want[i] {
			t.Errorf("Comparison()[%d].Class = %q, want %q", i, c.Class, want[i])
		}
	}
	if !about(comp[1].Current, 4.0/12.0) {
		t.Errorf("Public Equities current weight = %v, want %v", comp[1].Current, 4.0/12.0)
	}
	if comp[0].Target != 0.42 {
		t.Errorf("Fixed Income target = %v, want 0.42", comp[0].Target)
	}
}

func TestSnapshot_FXExposure(t *testing.T) {
	s := Compute(testBook(), NewDate(2026, 1, 30))
	net, pct := s.FXExposure()
	if !net.Equal(CAD(1.8e9)) {
		t.Errorf("net FX = %v, want $1.8B", net)
	}
	if !about(pct, 0.15) {
		t.Errorf("FX pct = %v, want 0.15", pct)
	}
}

func TestSnapshot_Limits(t *testing.T) {
	s := Compute(testBook(), NewDate(2026, 1, 30))
	rows := s.Limits()
	// Three asset-mix rows plus FX and funded status.
	if len(rows) != 5 {
		t.Fatalf("Limits() returned %d rows, want 5", len(rows))
	}

	byName := make(map[string]LimitRow)
	for _, row := range rows {
		byName[row.Name] = row
	}
	for _, class := range []string{"Fixed Income", "Public Equities", "Private Real Estate"} {
		if got := byName[class].Status; got != StatusOK {
			t.Errorf("%s status = %v, want OK", class, got)
		}
	}
	// 15.0% is inside the limit but above the 13.5% warning level.
	if got := byName["FX Net Exposure"].Status; got != StatusWarn {
		t.Errorf("FX status = %v, want WARN at exactly 15%%", got)
	}
	// 109.1% funded is inside the band and above the 105% warning level.
	if got := byName["Funded Status"].Status; got != StatusOK {
		t.Errorf("funded status = %v, want OK", got)
	}
	if s.Breaches() != 0 {
		t.Errorf("Breaches() = %d, want 0", s.Breaches())
	}
	if s.Warnings() != 1 {
		t.Errorf("Warnings() = %d, want 1 (FX)", s.Warnings())
	}
}

func TestRangeStatus(t *testing.T) {
	tests := []struct {
		name            string
		current, lo, hi float64
		want            Status
	}{
		{"inside", 0.40, 0.20, 0.75, StatusOK},
		{"below range", 0.10, 0.20, 0.75, StatusBreach},
		{"above range", 0.80, 0.20, 0.75, StatusBreach},
		{"near upper bound", 0.70, 0.20, 0.75, StatusWarn},
		{"at upper bound", 0.75, 0.20, 0.75, StatusWarn},
		{"funding class", -0.12, -0.50, 0, StatusOK},
		{"funding class breach", 0.05, -0.50, 0, StatusBreach},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rangeStatus(tt.current, tt.lo, tt.hi); got != tt.want {
				t.Errorf("rangeStatus(%v, %v, %v) = %v, want %v", tt.current, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestFundedStatusBand(t *testing.T) {
	tests := []struct {
		fs   float64
		want Status
	}{
		{1.11, StatusOK},
		{1.02, StatusWarn},
		{0.98, StatusBreach},
		{1.55, StatusBreach},
		{1.05, StatusOK},
	}
	for _, tt := range tests {
		if got := fundedStatusOf(tt.fs); got != tt.want {
			t.Errorf("fundedStatusOf(%v) = %v, want %v", tt.fs, got, tt.want)
		}
	}
}

func TestSnapshot_TopIssuers(t *testing.T) {
	s := Compute(testBook(), NewDate(2026, 1, 30))
	top := s.TopIssuers(5)
	if len(top) != 3 {
		t.Fatalf("TopIssuers(5) = %d rows, want 3 (only 3 issuers)", len(top))
	}
	if top[0].Issuer != "Gov Bond 5Y" {
		t.Errorf("largest issuer = %q, want Gov Bond 5Y", top[0].Issuer)
	}
	// Every fixture issuer holds far more than 5% of assets.
	for _, row := range top {
		if row.Status != StatusBreach {
			t.Errorf("issuer %q status = %v, want BREACH above 5%%", row.Issuer, row.Status)
		}
	}

	if got := s.TopIssuers(2); len(got) != 2 {
		t.Errorf("TopIssuers(2) = %d rows, want 2", len(got))
	}
}

func TestSnapshot_Summary(t *testing.T) {
	s := Compute(testBook(), NewDate(2026, 1, 30))
	summary := s.Summary()

	for _, want := range []string{
		"Lakefield Fund Snapshot (2026-01-30)",
		"Funded Status: 109.1%",
		"Total Assets: $12.0B",
		"Asset Mix vs Policy:",
		"FX Net Exposure: 15.0% (limit: 15%) -> WARN",
		"2-Day Trend:",
		"Funded Status:      ",
		"Fixed Income w:     ",
		"Public Equities w:  ",
		"Private RE w:       ",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q\n%s", want, summary)
		}
	}
}

func TestBook_Dates(t *testing.T) {
	book := testBook()
	dates := book.Dates()
	if len(dates) != 2 {
		t.Fatalf("Dates() = %d, want 2", len(dates))
	}
	if dates[0] != NewDate(2026, 1, 29) || dates[1] != NewDate(2026, 1, 30) {
		t.Errorf("Dates() = %v, want oldest first", dates)
	}
	if book.LastDate() != NewDate(2026, 1, 30) {
		t.Errorf("LastDate() = %v", book.LastDate())
	}
}

func TestBook_Series(t *testing.T) {
	series := testBook().Series()
	if len(series) != 2 {
		t.Fatalf("Series() = %d points, want 2", len(series))
	}
	// The equity sleeve shrinks from 4.2B to 4B between the two dates,
	// so total assets fall from 12.2B to 12B and funded status with them.
	if !series[0].Assets.Equal(CAD(12.2e9)) {
		t.Errorf("Series()[0].Assets = %v, want $12.2B", series[0].Assets)
	}
	if series[1].FundedStatus >= series[0].FundedStatus {
		t.Errorf("funded status should fall: %v -> %v", series[0].FundedStatus, series[1].FundedStatus)
	}
	if !about(series[1].WFixedIncome, 0.5) {
		t.Errorf("WFixedIncome = %v, want 0.5", series[1].WFixedIncome)
	}
}
