// Package valueobject defines immutable domain value types.
package valueobject

import (
	"fmt"
	"time"
)

// MonthKeyFormat is the layout of a month key string.
const MonthKeyFormat = "2006-01"

// Month identifies one calendar month in UTC. It is the unit budgets are
// keyed on and the window all monthly aggregates are computed over.
type Month struct {
	year  int
	month time.Month
}

// MonthOf returns the Month containing the given instant, evaluated in UTC.
func MonthOf(t time.Time) Month {
	u := t.UTC()
	return Month{year: u.Year(), month: u.Month()}
}

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(key string) (Month, error) {
	t, err := time.Parse(MonthKeyFormat, key)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return Month{year: t.Year(), month: t.Month()}, nil
}

// Key returns the "YYYY-MM" month key.
func (m Month) Key() string {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format(MonthKeyFormat)
}

// Start returns the first instant of the month (day 1, 00:00:00 UTC).
func (m Month) Start() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive upper bound of the month: the first instant of
// the following month. Deriving the bound by date arithmetic instead of a
// fixed day number keeps 28/29/30-day months correct.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains reports whether the instant falls inside the month window.
func (m Month) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(m.Start()) && u.Before(m.End())
}
