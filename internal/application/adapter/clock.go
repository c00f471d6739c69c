// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts wall-clock access so month-keyed operations can be
// pinned to a fixed instant in tests.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
}
