// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
//
// The composite unique index makes the database the final arbiter of the
// one-budget-per-(user, category, month) rule; concurrent creates cannot
// both land.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_month"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_month"`
	CategoryName string          `gorm:"type:varchar(100);not null"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month        string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budgets_user_category_month"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		UserID:       m.UserID,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		MonthlyLimit: m.MonthlyLimit,
		Month:        m.Month,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		UserID:       budget.UserID,
		CategoryID:   budget.CategoryID,
		CategoryName: budget.CategoryName,
		MonthlyLimit: budget.MonthlyLimit,
		Month:        budget.Month,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}
