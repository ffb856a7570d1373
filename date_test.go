package risknav

import (
	"fmt"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format (Fallback)
		{"2026-01-30", NewDate(2026, time.January, 30), false},
		{"2026-1-5", NewDate(2026, time.January, 5), false},
		{"invalid-date", Date{}, true},

		// Relative Duration Format
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-0d", today, false},
		{"+0d", today, false},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(currentYear, currentMonth+1, today.Day()), false},
		{"+1y", NewDate(currentYear+1, currentMonth, today.Day()), false},
		{"-1y", NewDate(currentYear-1, currentMonth, today.Day()), false},

		// [MM-]DD Format
		{"27", NewDate(currentYear, currentMonth, 27), false},
		{fmt.Sprintf("%d-27", currentMonth), NewDate(currentYear, currentMonth, 27), false},
		{"0", NewDate(currentYear, currentMonth, 0), false},                               // Last day of previous month
		{fmt.Sprintf("%d-0", currentMonth), NewDate(currentYear, currentMonth, 0), false}, // Last day of previous month
		{"1-15", NewDate(currentYear, time.January, 15), false},
		{"0-15", NewDate(currentYear-1, time.December, 15), false},
		{"1-0", NewDate(currentYear-1, time.December, 31), false}, // Last day of previous year
		{"0-0", NewDate(currentYear-1, time.November, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBusinessDaysBack(t *testing.T) {
	// 2026-01-30 is a Friday.
	friday := NewDate(2026, time.January, 30)

	dates := BusinessDaysBack(friday, 10)
	if len(dates) != 10 {
		t.Fatalf("BusinessDaysBack() returned %d dates, want 10", len(dates))
	}
	if got, want := dates[len(dates)-1], friday; got != want {
		t.Errorf("latest date = %s, want %s", got, want)
	}
	if got, want := dates[0], NewDate(2026, time.January, 19); got != want {
		t.Errorf("earliest date = %s, want %s", got, want)
	}
	for i, d := range dates {
		if !d.IsBusinessDay() {
			t.Errorf("dates[%d] = %s falls on a %s", i, d, d.Weekday())
		}
		if i > 0 && !dates[i-1].Before(d) {
			t.Errorf("dates not sorted: %s before %s", dates[i-1], d)
		}
	}
}

func TestPrevBusinessDay(t *testing.T) {
	// 2026-01-25 is a Sunday, the previous business day is Friday the 23rd.
	sunday := NewDate(2026, time.January, 25)
	if got, want := sunday.PrevBusinessDay(), NewDate(2026, time.January, 23); got != want {
		t.Errorf("PrevBusinessDay(%s) = %s, want %s", sunday, got, want)
	}
	// A business day maps to itself.
	monday := NewDate(2026, time.January, 26)
	if got := monday.PrevBusinessDay(); got != monday {
		t.Errorf("PrevBusinessDay(%s) = %s, want itself", monday, got)
	}
}
