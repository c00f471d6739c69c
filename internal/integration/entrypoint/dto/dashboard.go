// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the aggregated overview in API responses.
type DashboardResponse struct {
	TotalExpenses     decimal.Decimal             `json:"total_expenses"`
	MonthlyExpenses   decimal.Decimal             `json:"monthly_expenses"`
	Month             string                      `json:"month"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categories_breakdown"`
	RecentExpenses    []RecentExpenseResponse     `json:"recent_expenses"`
	BudgetStatus      []BudgetStatusResponse      `json:"budget_status"`
}

// CategoryBreakdownResponse is one category's share of the monthly spend.
// The breakdown keys entries by the snapshot name, not the category ID.
type CategoryBreakdownResponse struct {
	CategoryName string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
}

// RecentExpenseResponse is one entry in the recent-expenses strip.
type RecentExpenseResponse struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
}

// BudgetStatusResponse is one budget with its derived utilization.
type BudgetStatusResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Month        string          `json:"month"`
	SpentAmount  decimal.Decimal `json:"spent_amount"`
	Percentage   float64         `json:"percentage"`
}

// ToDashboardResponse converts the use case output to the API shape.
// Slices are initialized so empty sections marshal as [] rather than null.
func ToDashboardResponse(out *dashboard.GetDashboardOutput) DashboardResponse {
	resp := DashboardResponse{
		TotalExpenses:     out.TotalExpenses,
		MonthlyExpenses:   out.MonthlyExpenses,
		Month:             out.Month,
		CategoryBreakdown: make([]CategoryBreakdownResponse, len(out.CategoryBreakdown)),
		RecentExpenses:    make([]RecentExpenseResponse, len(out.RecentExpenses)),
		BudgetStatus:      make([]BudgetStatusResponse, len(out.BudgetStatus)),
	}

	for i, c := range out.CategoryBreakdown {
		resp.CategoryBreakdown[i] = CategoryBreakdownResponse{
			CategoryName: c.CategoryName,
			Amount:       c.Amount,
		}
	}

	for i, e := range out.RecentExpenses {
		resp.RecentExpenses[i] = RecentExpenseResponse{
			ID:           e.ID.String(),
			Amount:       e.Amount,
			CategoryID:   e.CategoryID.String(),
			CategoryName: e.CategoryName,
			Description:  e.Description,
			Date:         e.Date,
		}
	}

	for i, b := range out.BudgetStatus {
		resp.BudgetStatus[i] = BudgetStatusResponse{
			ID:           b.ID.String(),
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			MonthlyLimit: b.MonthlyLimit,
			Month:        b.Month,
			SpentAmount:  b.SpentAmount,
			Percentage:   b.Percentage,
		}
	}

	return resp
}
