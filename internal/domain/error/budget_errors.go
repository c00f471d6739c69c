// Package error defines domain-specific errors for the Expense Buddy application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist or is not
	// owned by the acting user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrDuplicateBudget is returned when a budget already exists for the
	// same user, category and month.
	ErrDuplicateBudget = errors.New("budget already exists for this category this month")

	// ErrInvalidBudgetLimit is returned when the monthly limit is negative.
	ErrInvalidBudgetLimit = errors.New("monthly limit must not be negative")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound         BudgetErrorCode = "BDG-010001"
	ErrCodeDuplicateBudget        BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetLimit     BudgetErrorCode = "BDG-010003"
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BDG-010004"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BDG-010005"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
