// Package budget contains budget-registry use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	"github.com/expense-buddy/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase returns the user's budgets for the current month,
// each annotated with a spend recomputed from the expense ledger. Nothing
// is read from a stored spent column; the ledger is the only authority.
type ListBudgetsUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	month := valueobject.MonthOf(uc.clock.Now())

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, month.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	start, end := month.Start(), month.End()

	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetOutput, len(budgets)),
	}
	for i, b := range budgets {
		categoryID := b.CategoryID
		spent, err := uc.expenseRepo.SumAmount(ctx, adapter.ExpenseSumFilter{
			UserID:     input.UserID,
			CategoryID: &categoryID,
			Start:      &start,
			End:        &end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to compute spent amount: %w", err)
		}

		output.Budgets[i] = &BudgetOutput{
			ID:           b.ID,
			UserID:       b.UserID,
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			MonthlyLimit: b.MonthlyLimit,
			Month:        b.Month,
			SpentAmount:  spent,
			Percentage:   entity.UtilizationPercent(spent, b.MonthlyLimit),
			CreatedAt:    b.CreatedAt,
		}
	}

	return output, nil
}
