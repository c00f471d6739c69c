// Package expense contains expense-ledger use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
}

// ExpenseOutput represents a single expense in use case outputs.
type ExpenseOutput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	CategoryName string
	Description  string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	// Validate amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	// Resolve the category; its current name is stamped onto the expense.
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		category.ID,
		category.Name,
		input.Description,
		input.Date,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}

// toExpenseOutput converts an expense entity to its use case output form.
func toExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:           e.ID,
		UserID:       e.UserID,
		Amount:       e.Amount,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Description:  e.Description,
		Date:         e.Date,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
