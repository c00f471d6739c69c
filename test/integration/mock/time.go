// Package mock provides test doubles for the integration suite.
package mock

import (
	"sync"
	"time"
)

// Time is a settable clock for scenarios that pin the current month.
// It satisfies the application's Clock adapter.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

// NewTime creates a clock starting at the real current time.
func NewTime() *Time {
	return &Time{current: time.Now().UTC()}
}

// SetCurrentTime pins the clock to the given instant.
func (t *Time) SetCurrentTime(current time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = current.UTC()
}

// Now returns the pinned instant in UTC.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
