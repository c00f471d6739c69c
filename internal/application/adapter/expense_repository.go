// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/domain/entity"
)

// ExpenseSortKey identifies the column used to order expense listings.
type ExpenseSortKey string

const (
	ExpenseSortByDate   ExpenseSortKey = "date"
	ExpenseSortByAmount ExpenseSortKey = "amount"
)

// ExpenseFilter defines filter options for listing expenses.
// UserID is mandatory: every query is ownership-scoped.
type ExpenseFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time // inclusive
	EndDate    *time.Time // inclusive
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string // case-insensitive description match
	SortBy     ExpenseSortKey
	SortDesc   bool
	Offset     int
	Limit      int
}

// ExpenseSumFilter defines the scope of an amount aggregation.
// Start is inclusive and End exclusive, matching a month window.
type ExpenseSumFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Start      *time.Time
	End        *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID, scoped to the owning user.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, ordered per its sort key.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense scoped to the owning user.
	// Returns the number of rows removed (0 when nothing matched).
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error)

	// SumAmount returns the total amount over the filtered expenses.
	// An empty aggregate is zero, not an error.
	SumAmount(ctx context.Context, filter ExpenseSumFilter) (decimal.Decimal, error)

	// SumByCategoryName groups expenses in [start, end) by their snapshot
	// category name and returns per-group sums, largest first, capped at limit.
	SumByCategoryName(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]entity.CategoryTotal, error)

	// FindRecent returns the most recent expenses by date, newest first.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Expense, error)
}
