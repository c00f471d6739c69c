// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Description string          `json:"description" binding:"required,max=255"`
	Date        time.Time       `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Updates replace the full record, so every field is required.
type UpdateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Description string          `json:"description" binding:"required,max=255"`
	Date        time.Time       `json:"date" binding:"required"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a use case expense output to the API shape.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID.String(),
		Amount:       e.Amount,
		CategoryID:   e.CategoryID.String(),
		CategoryName: e.CategoryName,
		Description:  e.Description,
		Date:         e.Date,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
