// Package expense contains expense-ledger use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/application/adapter"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Message string
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion. Deleting the same expense twice
// fails the second time: the delete is scoped by (id, user) and reports
// not-found when no row matched.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	deleted, err := uc.expenseRepo.Delete(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}
	if deleted == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	return &DeleteExpenseOutput{Message: "Expense deleted successfully"}, nil
}
