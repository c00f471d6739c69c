// Package dashboard contains the aggregated-overview use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
	"github.com/expense-buddy/backend/internal/domain/valueobject"
)

const (
	topCategoriesLimit  = 10
	recentExpensesLimit = 5
)

// GetDashboardInput represents the input for the dashboard overview.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// CategoryBreakdownItem is one category's share of the monthly spend.
type CategoryBreakdownItem struct {
	CategoryName string
	Amount       decimal.Decimal
}

// RecentExpenseItem is one entry in the recent-expenses strip.
type RecentExpenseItem struct {
	ID           uuid.UUID
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	CategoryName string
	Description  string
	Date         time.Time
}

// BudgetStatusItem is one budget annotated with its derived utilization.
type BudgetStatusItem struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	MonthlyLimit decimal.Decimal
	Month        string
	SpentAmount  decimal.Decimal
	Percentage   float64
}

// GetDashboardOutput represents the assembled dashboard.
type GetDashboardOutput struct {
	TotalExpenses     decimal.Decimal
	MonthlyExpenses   decimal.Decimal
	Month             string
	CategoryBreakdown []CategoryBreakdownItem
	RecentExpenses    []RecentExpenseItem
	BudgetStatus      []BudgetStatusItem
}

// GetDashboardUseCase assembles the overview from the expense ledger and
// budget registry at read time. Nothing here is precomputed or cached;
// every figure is derived from current rows.
type GetDashboardUseCase struct {
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	clock       adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	clock adapter.Clock,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		clock:       clock,
	}
}

// Execute assembles the dashboard. The four independent reads run
// concurrently; the first failure cancels the rest.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	month := valueobject.MonthOf(uc.clock.Now())
	start, end := month.Start(), month.End()

	var (
		totalAll  decimal.Decimal
		totalMon  decimal.Decimal
		breakdown []entity.CategoryTotal
		recent    []*entity.Expense
		budgets   []*entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalAll, err = uc.expenseRepo.SumAmount(gctx, adapter.ExpenseSumFilter{UserID: input.UserID})
		if err != nil {
			return fmt.Errorf("failed to compute total expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		totalMon, err = uc.expenseRepo.SumAmount(gctx, adapter.ExpenseSumFilter{
			UserID: input.UserID,
			Start:  &start,
			End:    &end,
		})
		if err != nil {
			return fmt.Errorf("failed to compute monthly expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		breakdown, err = uc.expenseRepo.SumByCategoryName(gctx, input.UserID, start, end, topCategoriesLimit)
		if err != nil {
			return fmt.Errorf("failed to compute category breakdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		recent, err = uc.expenseRepo.FindRecent(gctx, input.UserID, recentExpensesLimit)
		if err != nil {
			return fmt.Errorf("failed to load recent expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		budgets, err = uc.budgetRepo.FindByUserAndMonth(gctx, input.UserID, month.Key())
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	output := &GetDashboardOutput{
		TotalExpenses:     totalAll,
		MonthlyExpenses:   totalMon,
		Month:             month.Key(),
		CategoryBreakdown: make([]CategoryBreakdownItem, len(breakdown)),
		RecentExpenses:    make([]RecentExpenseItem, len(recent)),
		BudgetStatus:      make([]BudgetStatusItem, len(budgets)),
	}

	for i, ct := range breakdown {
		output.CategoryBreakdown[i] = CategoryBreakdownItem{
			CategoryName: ct.Name,
			Amount:       ct.Amount,
		}
	}

	for i, e := range recent {
		output.RecentExpenses[i] = RecentExpenseItem{
			ID:           e.ID,
			Amount:       e.Amount,
			CategoryID:   e.CategoryID,
			CategoryName: e.CategoryName,
			Description:  e.Description,
			Date:         e.Date,
		}
	}

	// Budget spends depend on the loaded budgets, so they run after the
	// group settles.
	for i, b := range budgets {
		categoryID := b.CategoryID
		spent, err := uc.expenseRepo.SumAmount(ctx, adapter.ExpenseSumFilter{
			UserID:     input.UserID,
			CategoryID: &categoryID,
			Start:      &start,
			End:        &end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to compute budget spend: %w", err)
		}
		output.BudgetStatus[i] = BudgetStatusItem{
			ID:           b.ID,
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			MonthlyLimit: b.MonthlyLimit,
			Month:        b.Month,
			SpentAmount:  spent,
			Percentage:   entity.UtilizationPercent(spent, b.MonthlyLimit),
		}
	}

	return output, nil
}
