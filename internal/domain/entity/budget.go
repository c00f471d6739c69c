// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a per-user, per-category spending limit for one
// calendar month. At most one budget exists per (user, category, month).
//
// The spent amount is never stored on the budget; it is recomputed from
// the expense ledger every time the budget is read.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	MonthlyLimit decimal.Decimal
	Month        string // "YYYY-MM" month key
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudget creates a new Budget entity for the given month key.
func NewBudget(
	userID uuid.UUID,
	categoryID uuid.UUID,
	categoryName string,
	monthlyLimit decimal.Decimal,
	month string,
) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		MonthlyLimit: monthlyLimit,
		Month:        month,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BudgetWithSpent pairs a budget with its derived spend for the month.
type BudgetWithSpent struct {
	Budget      *Budget
	SpentAmount decimal.Decimal
	Percentage  float64
}

// UtilizationPercent returns spent/limit*100. A non-positive limit yields
// a defined 0 rather than a division fault. There is no upper clamp:
// values above 100 signal overspend.
func UtilizationPercent(spent, limit decimal.Decimal) float64 {
	if limit.Sign() <= 0 {
		return 0
	}
	pct, _ := spent.Div(limit).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
