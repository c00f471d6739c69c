// Package error defines domain-specific errors for the Expense Buddy application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the catalog.
	ErrCategoryNotFound = errors.New("category not found")
)
