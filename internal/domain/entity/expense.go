// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense record owned by exactly one user.
//
// CategoryName is a snapshot of the category's name captured at write time.
// It is intentionally denormalized: renaming a category later must not
// rewrite the labels of historical expenses.
type Expense struct {
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

// NewExpense creates a new Expense entity stamped with the given category name.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	categoryID uuid.UUID,
	categoryName string,
	description string,
	date time.Time,
) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:           uuid.New(),
		UserID:       userID,
		Amount:       amount,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Description:  description,
		Date:         date.UTC(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CategoryTotal represents the summed spend for one category name group.
type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}
