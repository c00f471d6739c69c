// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/usecase/budget"
)

// CreateBudgetRequest represents the request body for budget creation.
// The governed month is always the current month; it is not accepted
// from the client.
type CreateBudgetRequest struct {
	CategoryID   string          `json:"category_id" binding:"required,uuid"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	MonthlyLimit decimal.Decimal `json:"monthly_limit" binding:"required"`
}

// BudgetResponse represents a budget in API responses. SpentAmount and
// Percentage are derived from the expense ledger at read time.
type BudgetResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Month        string          `json:"month"`
	SpentAmount  decimal.Decimal `json:"spent_amount"`
	Percentage   float64         `json:"percentage"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToBudgetResponse converts a use case budget output to the API shape.
func ToBudgetResponse(b *budget.BudgetOutput) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID.String(),
		CategoryName: b.CategoryName,
		MonthlyLimit: b.MonthlyLimit,
		Month:        b.Month,
		SpentAmount:  b.SpentAmount,
		Percentage:   b.Percentage,
		CreatedAt:    b.CreatedAt,
	}
}
