package risknav

import "testing"

func TestBook_Quality_Clean(t *testing.T) {
	report := testBook().Quality()

	if report.Records != 10 {
		t.Errorf("Records = %d, want 10", report.Records)
	}
	if report.Missing != 0 || report.MissingRate != 0 {
		t.Errorf("clean book reports missing = %d (%.2f%%)", report.Missing, report.MissingRate)
	}
	if report.LastUpdate != NewDate(2026, 1, 30) {
		t.Errorf("LastUpdate = %v", report.LastUpdate)
	}
	if len(report.Columns) != len(numericColumns) {
		t.Fatalf("Columns = %d, want %d", len(report.Columns), len(numericColumns))
	}
	for _, cq := range report.Columns {
		if cq.Status != StatusOK {
			t.Errorf("column %q status = %v, want OK (anomalies=%d missing=%d)",
				cq.Column, cq.Status, cq.Anomalies, cq.Missing)
		}
	}
	if len(report.Coverage) != 2 {
		t.Fatalf("Coverage = %d dates, want 2", len(report.Coverage))
	}
	for _, c := range report.Coverage {
		if c.Records != 5 || c.Expected != ExpectedDailyRecords {
			t.Errorf("coverage %v = %d/%d", c.Date, c.Records, c.Expected)
		}
	}
}

func TestBook_Quality_MissingAndRange(t *testing.T) {
	book := testBook()
	on := NewDate(2026, 1, 30)
	book.Append(
		// A row with an empty duration cell.
		Position{
			Date: on, Name: "Broken Row", Category: Asset, Class: "Fixed Income",
			MTM: CAD(1e9), Exposure: CAD(1e9), Missing: []string{"duration"},
		},
		// A duration far outside the -5..30 rule.
		Position{
			Date: on, Name: "Wild Duration", Category: Asset, Class: "Fixed Income",
			MTM: CAD(1e9), Exposure: CAD(1e9), Duration: 95,
		},
	)

	report := book.Quality()

	var durCol ColumnQuality
	for _, cq := range report.Columns {
		if cq.Column == "duration" {
			durCol = cq
		}
	}
	if durCol.Missing != 1 {
		t.Errorf("duration missing = %d, want 1", durCol.Missing)
	}
	if durCol.Anomalies != 1 {
		t.Errorf("duration anomalies = %d, want 1", durCol.Anomalies)
	}
	// Missing > 0 marks the column as an issue regardless of anomalies.
	if durCol.Status != StatusBreach {
		t.Errorf("duration status = %v, want ISSUE", durCol.Status)
	}

	found := false
	for _, a := range report.Details {
		if a.Column == "duration" && a.Value == 95 && a.Rule == "Duration out of range" {
			found = true
		}
	}
	if !found {
		t.Errorf("anomaly detail for wild duration not reported: %+v", report.Details)
	}
}

func TestBook_Quality_ZScoreFallback(t *testing.T) {
	book := testBook()
	on := NewDate(2026, 1, 30)
	// esg_score has no range rule; a huge outlier must trip the 3-sigma check.
	for i := 0; i < 20; i++ {
		book.Append(Position{
			Date: on, Name: "Filler", Category: Asset, Class: "Fixed Income",
			MTM: CAD(1e9), Exposure: CAD(1e9), ESGScore: 75,
		})
	}
	book.Append(Position{
		Date: on, Name: "Outlier", Category: Asset, Class: "Fixed Income",
		MTM: CAD(1e9), Exposure: CAD(1e9), ESGScore: 1e6,
	})

	report := book.Quality()
	var esg ColumnQuality
	for _, cq := range report.Columns {
		if cq.Column == "esg_score" {
			esg = cq
		}
	}
	if esg.Anomalies == 0 {
		t.Error("z-score fallback did not flag the ESG outlier")
	}
	if esg.Status == StatusOK {
		t.Errorf("esg_score status = %v, want WARN or ISSUE", esg.Status)
	}
}
