// Package expense contains expense-ledger use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/adapter"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
// The full record is replaced, mirroring the create payload.
type UpdateExpenseInput struct {
	UserID      uuid.UUID
	ExpenseID   uuid.UUID
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	// The lookup is ownership-scoped; another user's expense surfaces as not found.
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	expense.Amount = input.Amount
	expense.CategoryID = category.ID
	// Re-stamp the snapshot: a category change picks up the new category's
	// current name, but records that kept their category keep their label.
	expense.CategoryName = category.Name
	expense.Description = input.Description
	expense.Date = input.Date.UTC()
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}
