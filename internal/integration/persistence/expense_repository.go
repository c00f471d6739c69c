// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
	"github.com/expense-buddy/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by ID, scoped to the owning user.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses matching the filter, ordered per its sort key.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	query = query.Order(orderClause(filter)).
		Offset(filter.Offset).
		Limit(filter.Limit)

	var models []model.ExpenseModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses, nil
}

// orderClause maps a filter's sort key to a SQL ORDER BY expression.
// Only whitelisted column names ever reach the query string.
func orderClause(filter adapter.ExpenseFilter) string {
	column := "date"
	if filter.SortBy == adapter.ExpenseSortByAmount {
		column = "amount"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	return column + " " + direction + ", created_at DESC"
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an expense scoped to the owning user.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SumAmount returns the total amount over the filtered expenses.
func (r *expenseRepository) SumAmount(ctx context.Context, filter adapter.ExpenseSumFilter) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Start != nil {
		query = query.Where("date >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("date < ?", *filter.End)
	}

	var total decimal.Decimal
	err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumByCategoryName groups expenses in [start, end) by their snapshot
// category name, largest sum first.
func (r *expenseRepository) SumByCategoryName(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]entity.CategoryTotal, error) {
	var rows []struct {
		CategoryName string
		Total        decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("category_name, SUM(amount) AS total").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Group("category_name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]entity.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.CategoryTotal{
			Name:   row.CategoryName,
			Amount: row.Total,
		}
	}
	return totals, nil
}

// FindRecent returns the most recent expenses by date, newest first.
func (r *expenseRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses, nil
}
