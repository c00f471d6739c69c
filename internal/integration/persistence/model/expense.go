// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
//
// CategoryName duplicates the category's name at write time so that
// listing and grouping never need a join, and historical rows keep the
// label they were recorded under.
type ExpenseModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryName string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Date         time.Time       `gorm:"not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:           m.ID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		Description:  m.Description,
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:           expense.ID,
		UserID:       expense.UserID,
		Amount:       expense.Amount,
		CategoryID:   expense.CategoryID,
		CategoryName: expense.CategoryName,
		Description:  expense.Description,
		Date:         expense.Date,
		CreatedAt:    expense.CreatedAt,
		UpdatedAt:    expense.UpdatedAt,
	}
}
