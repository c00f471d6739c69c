// Package budget contains budget-registry use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
	"github.com/expense-buddy/backend/internal/domain/valueobject"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	MonthlyLimit decimal.Decimal
}

// BudgetOutput represents a single budget in use case outputs.
type BudgetOutput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	MonthlyLimit decimal.Decimal
	Month        string
	SpentAmount  decimal.Decimal
	Percentage   float64
	CreatedAt    time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *BudgetOutput
}

// CreateBudgetUseCase handles budget creation logic. The governed month is
// always the current calendar month at call time, never caller-supplied.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.MonthlyLimit.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"monthly limit must not be negative",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	month := valueobject.MonthOf(uc.clock.Now()).Key()

	// Fast-path duplicate check. The unique index on (user, category, month)
	// remains the authority when two creates race past this read.
	exists, err := uc.budgetRepo.ExistsByUserCategoryAndMonth(ctx, input.UserID, category.ID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
	if exists {
		return nil, duplicateBudgetError()
	}

	budget := entity.NewBudget(input.UserID, category.ID, category.Name, input.MonthlyLimit, month)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateBudget) {
			return nil, duplicateBudgetError()
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: &BudgetOutput{
			ID:           budget.ID,
			UserID:       budget.UserID,
			CategoryID:   budget.CategoryID,
			CategoryName: budget.CategoryName,
			MonthlyLimit: budget.MonthlyLimit,
			Month:        budget.Month,
			SpentAmount:  decimal.Zero,
			Percentage:   0,
			CreatedAt:    budget.CreatedAt,
		},
	}, nil
}

// duplicateBudgetError builds the coded duplicate-budget error.
func duplicateBudgetError() *domainerror.BudgetError {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeDuplicateBudget,
		"budget already exists for this category this month",
		domainerror.ErrDuplicateBudget,
	)
}
