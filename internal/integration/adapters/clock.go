// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/expense-buddy/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface on the wall clock.
type systemClock struct{}

// NewSystemClock creates a Clock backed by the system time.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current instant in UTC.
func (c *systemClock) Now() time.Time {
	return time.Now().UTC()
}
