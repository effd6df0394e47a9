package handlers

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period    string
		wantStart string
		wantEnd   string
	}{
		{"today", "2025-06-18", "2025-06-18"},
		{"yesterday", "2025-06-17", "2025-06-17"},
		{"this_week", "2025-06-16", "2025-06-18"},
		{"last_week", "2025-06-09", "2025-06-15"},
		{"this_month", "2025-06-01", "2025-06-18"},
		{"last_month", "2025-05-01", "2025-05-31"},
		{"this_year", "2025-01-01", "2025-06-18"},
		{"last_year", "2024-01-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, ok := periodRange(tt.period, now)
			if !ok {
				t.Fatalf("periodRange(%q) ok = false, want true", tt.period)
			}
			if got := start.Format(dateLayout); got != tt.wantStart {
				t.Errorf("start = %v, want %v", got, tt.wantStart)
			}
			if got := end.Format(dateLayout); got != tt.wantEnd {
				t.Errorf("end = %v, want %v", got, tt.wantEnd)
			}
			if !end.After(start) {
				t.Errorf("end %v is not after start %v", end, start)
			}
		})
	}
}

func TestPeriodRangeWeekStartsMonday(t *testing.T) {
	// A Sunday should still belong to the week that began the previous Monday
	sunday := time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)

	start, _, ok := periodRange("this_week", sunday)
	if !ok {
		t.Fatal("periodRange(this_week) ok = false, want true")
	}
	if got := start.Format(dateLayout); got != "2025-06-16" {
		t.Errorf("week start = %v, want 2025-06-16", got)
	}
}

func TestPeriodRangeRejectsUnknown(t *testing.T) {
	if _, _, ok := periodRange("fortnight", time.Now()); ok {
		t.Error(`periodRange("fortnight") ok = true, want false`)
	}
}

func TestPlatformVisitsIsStable(t *testing.T) {
	now := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	start, end, _ := periodRange("this_month", now)

	first := platformVisits(start, end)
	second := platformVisits(start, end)
	if first != second {
		t.Errorf("platformVisits not stable: %v then %v", first, second)
	}
	if first < 1000 {
		t.Errorf("platformVisits = %v, want at least 1000", first)
	}
}
