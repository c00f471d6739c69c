// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget. The storage layer enforces uniqueness of
	// (user, category, month) and reports a violation as ErrDuplicateBudget,
	// so concurrent creates serialize to a single winner.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by ID, scoped to the owning user.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets a user holds for a month key.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error)

	// ExistsByUserCategoryAndMonth checks for an existing (user, category, month) budget.
	ExistsByUserCategoryAndMonth(ctx context.Context, userID, categoryID uuid.UUID, month string) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget scoped to the owning user.
	// Returns the number of rows removed (0 when nothing matched).
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error)
}
