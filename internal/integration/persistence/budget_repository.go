// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
	"github.com/expense-buddy/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget. A violation of the (user, category, month)
// unique index surfaces as ErrDuplicateBudget.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrDuplicateBudget
		}
		return result.Error
	}
	return nil
}

// isUniqueViolation detects a unique-index violation across drivers.
// GORM translates to ErrDuplicatedKey when the driver supports it; the
// message check covers drivers that pass the raw error through.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// FindByID retrieves a budget by ID, scoped to the owning user.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserAndMonth retrieves all budgets a user holds for a month key.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var models []model.BudgetModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*entity.Budget, len(models))
	for i := range models {
		budgets[i] = models[i].ToEntity()
	}
	return budgets, nil
}

// ExistsByUserCategoryAndMonth checks for an existing (user, category, month) budget.
func (r *budgetRepository) ExistsByUserCategoryAndMonth(ctx context.Context, userID, categoryID uuid.UUID, month string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("user_id = ? AND category_id = ? AND month = ?", userID, categoryID, month).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a budget scoped to the owning user.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BudgetModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
