// Package budget contains budget-registry use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
	"github.com/expense-buddy/backend/internal/domain/valueobject"
)

// UpdateBudgetInput represents the input for budget update.
type UpdateBudgetInput struct {
	UserID       uuid.UUID
	BudgetID     uuid.UUID
	MonthlyLimit decimal.Decimal
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *BudgetOutput
}

// UpdateBudgetUseCase handles budget limit updates.
type UpdateBudgetUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.MonthlyLimit.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"monthly limit must not be negative",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	budget.MonthlyLimit = input.MonthlyLimit
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	// Spend is derived, never stored, so the response recomputes it over
	// the budget's own month window against the new limit.
	month, err := valueobject.ParseMonth(budget.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to parse budget month: %w", err)
	}
	start, end := month.Start(), month.End()
	categoryID := budget.CategoryID
	spent, err := uc.expenseRepo.SumAmount(ctx, adapter.ExpenseSumFilter{
		UserID:     input.UserID,
		CategoryID: &categoryID,
		Start:      &start,
		End:        &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute spent amount: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: &BudgetOutput{
			ID:           budget.ID,
			UserID:       budget.UserID,
			CategoryID:   budget.CategoryID,
			CategoryName: budget.CategoryName,
			MonthlyLimit: budget.MonthlyLimit,
			Month:        budget.Month,
			SpentAmount:  spent,
			Percentage:   entity.UtilizationPercent(spent, budget.MonthlyLimit),
			CreatedAt:    budget.CreatedAt,
		},
	}, nil
}
