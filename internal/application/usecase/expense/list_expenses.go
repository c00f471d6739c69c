// Package expense contains expense-ledger use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/adapter"
)

const (
	// defaultPageLimit is the page size used when none is requested.
	defaultPageLimit = 50
	// maxPageLimit caps the page size a caller can request.
	maxPageLimit = 100
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
	SortBy     string // "date" or "amount"
	SortOrder  string // "asc" or "desc"
	Page       int
	Limit      int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	sortBy := adapter.ExpenseSortByDate
	if input.SortBy == string(adapter.ExpenseSortByAmount) {
		sortBy = adapter.ExpenseSortByAmount
	}
	// Default ordering is newest first.
	sortDesc := input.SortOrder != "asc"

	filter := adapter.ExpenseFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		MinAmount:  input.MinAmount,
		MaxAmount:  input.MaxAmount,
		Search:     input.Search,
		SortBy:     sortBy,
		SortDesc:   sortDesc,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(expenses)),
	}
	for i, e := range expenses {
		output.Expenses[i] = toExpenseOutput(e)
	}

	return output, nil
}
