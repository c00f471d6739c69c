package valueobject

import (
	"testing"
	"time"
)

func TestMonthKeyRoundTrip(t *testing.T) {
	m, err := ParseMonth("2024-06")
	if err != nil {
		t.Fatalf("ParseMonth returned error: %v", err)
	}
	if m.Key() != "2024-06" {
		t.Errorf("expected key 2024-06, got %s", m.Key())
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, key := range []string{"", "2024", "2024-13", "06-2024", "2024-6"} {
		if _, err := ParseMonth(key); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestMonthWindowBounds(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		lastDay time.Time // last calendar day of the month, must be contained
		nextDay time.Time // first day of the next month, must be excluded
	}{
		{
			name:    "31-day month",
			key:     "2024-01",
			lastDay: time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC),
			nextDay: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "29-day february (leap year)",
			key:     "2024-02",
			lastDay: time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			nextDay: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "28-day february",
			key:     "2023-02",
			lastDay: time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC),
			nextDay: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "30-day month",
			key:     "2024-06",
			lastDay: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			nextDay: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "december year rollover",
			key:     "2024-12",
			lastDay: time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
			nextDay: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMonth(tt.key)
			if err != nil {
				t.Fatalf("ParseMonth(%q) returned error: %v", tt.key, err)
			}
			if !m.Contains(tt.lastDay) {
				t.Errorf("expected %v to be contained in %s", tt.lastDay, tt.key)
			}
			if m.Contains(tt.nextDay) {
				t.Errorf("expected %v to be excluded from %s", tt.nextDay, tt.key)
			}
			if !m.End().Equal(tt.nextDay) {
				t.Errorf("expected End() %v, got %v", tt.nextDay, m.End())
			}
		})
	}
}

func TestMonthOfUsesUTC(t *testing.T) {
	// 2024-06-30 23:00 -05:00 is already July in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2024, 6, 30, 23, 0, 0, 0, loc)

	m := MonthOf(local)
	if m.Key() != "2024-07" {
		t.Errorf("expected month key 2024-07, got %s", m.Key())
	}
}

func TestMonthStartIsFirstInstant(t *testing.T) {
	m := MonthOf(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !m.Start().Equal(want) {
		t.Errorf("expected start %v, got %v", want, m.Start())
	}
}
