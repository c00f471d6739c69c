// Package dashboard contains the aggregated-overview use case.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fakeExpenseRepo aggregates over an in-memory slice so the test exercises
// the same window semantics the SQL layer implements.
type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(context.Context, *entity.Expense) error { return nil }

func (r *fakeExpenseRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) FindByFilter(context.Context, adapter.ExpenseFilter) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) Update(context.Context, *entity.Expense) error { return nil }

func (r *fakeExpenseRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeExpenseRepo) SumAmount(_ context.Context, filter adapter.ExpenseSumFilter) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.CategoryID != nil && e.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Start != nil && e.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && !e.Date.Before(*filter.End) {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum, nil
}

func (r *fakeExpenseRepo) SumByCategoryName(_ context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]entity.CategoryTotal, error) {
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, e := range r.expenses {
		if e.UserID != userID || e.Date.Before(start) || !e.Date.Before(end) {
			continue
		}
		if _, ok := totals[e.CategoryName]; !ok {
			order = append(order, e.CategoryName)
		}
		totals[e.CategoryName] = totals[e.CategoryName].Add(e.Amount)
	}
	var out []entity.CategoryTotal
	for _, name := range order {
		out = append(out, entity.CategoryTotal{Name: name, Amount: totals[name]})
	}
	// Largest first, matching the SQL ORDER BY.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Amount.GreaterThan(out[i].Amount) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeExpenseRepo) FindRecent(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Expense, error) {
	var mine []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID {
			mine = append(mine, e)
		}
	}
	for i := 0; i < len(mine); i++ {
		for j := i + 1; j < len(mine); j++ {
			if mine[j].Date.After(mine[i].Date) {
				mine[i], mine[j] = mine[j], mine[i]
			}
		}
	}
	if len(mine) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (r *fakeBudgetRepo) Create(context.Context, *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (r *fakeBudgetRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.Month == month {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) ExistsByUserCategoryAndMonth(context.Context, uuid.UUID, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (r *fakeBudgetRepo) Update(context.Context, *entity.Budget) error { return nil }

func (r *fakeBudgetRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (int64, error) {
	return 0, nil
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)}
	userID := uuid.New()
	otherUser := uuid.New()
	foodID := uuid.New()
	travelID := uuid.New()

	t.Run("returns zeros and empty lists for a fresh user", func(t *testing.T) {
		uc := NewGetDashboardUseCase(&fakeExpenseRepo{}, &fakeBudgetRepo{}, clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !out.TotalExpenses.IsZero() || !out.MonthlyExpenses.IsZero() {
			t.Error("expected zero totals for a fresh user")
		}
		if len(out.CategoryBreakdown) != 0 || len(out.RecentExpenses) != 0 || len(out.BudgetStatus) != 0 {
			t.Error("expected empty dashboard sections for a fresh user")
		}
		if out.Month != "2024-06" {
			t.Errorf("expected month 2024-06, got %s", out.Month)
		}
	})

	t.Run("separates all-time and monthly totals at the month boundary", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(10), foodID, "Food & Dining", "groceries", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
			entity.NewExpense(userID, decimal.NewFromInt(20), foodID, "Food & Dining", "dinner", time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)),
			entity.NewExpense(userID, decimal.NewFromInt(40), foodID, "Food & Dining", "may dinner", time.Date(2024, time.May, 31, 23, 0, 0, 0, time.UTC)),
			entity.NewExpense(userID, decimal.NewFromInt(80), foodID, "Food & Dining", "july lunch", time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)),
			entity.NewExpense(otherUser, decimal.NewFromInt(999), foodID, "Food & Dining", "not mine", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetDashboardUseCase(expenseRepo, &fakeBudgetRepo{}, clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !out.TotalExpenses.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected all-time total 150, got %s", out.TotalExpenses)
		}
		if !out.MonthlyExpenses.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected monthly total 30, got %s", out.MonthlyExpenses)
		}
	})

	t.Run("orders the category breakdown by spend", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromInt(10), foodID, "Food & Dining", "lunch", time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
			entity.NewExpense(userID, decimal.NewFromInt(200), travelID, "Travel", "flight", time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)),
			entity.NewExpense(userID, decimal.NewFromInt(15), foodID, "Food & Dining", "dinner", time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetDashboardUseCase(expenseRepo, &fakeBudgetRepo{}, clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.CategoryBreakdown) != 2 {
			t.Fatalf("expected 2 breakdown entries, got %d", len(out.CategoryBreakdown))
		}
		if out.CategoryBreakdown[0].CategoryName != "Travel" {
			t.Errorf("expected Travel first, got %s", out.CategoryBreakdown[0].CategoryName)
		}
		if !out.CategoryBreakdown[1].Amount.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected Food & Dining total 25, got %s", out.CategoryBreakdown[1].Amount)
		}
	})

	t.Run("caps recent expenses at five, newest first", func(t *testing.T) {
		var expenses []*entity.Expense
		for day := 1; day <= 7; day++ {
			expenses = append(expenses, entity.NewExpense(
				userID, decimal.NewFromInt(int64(day)), foodID, "Food & Dining", "meal",
				time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC),
			))
		}
		uc := NewGetDashboardUseCase(&fakeExpenseRepo{expenses: expenses}, &fakeBudgetRepo{}, clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.RecentExpenses) != 5 {
			t.Fatalf("expected 5 recent expenses, got %d", len(out.RecentExpenses))
		}
		if out.RecentExpenses[0].Date.Day() != 7 {
			t.Errorf("expected the newest expense first, got day %d", out.RecentExpenses[0].Date.Day())
		}
	})

	t.Run("annotates budget status with derived utilization", func(t *testing.T) {
		expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(userID, decimal.NewFromFloat(25.50), foodID, "Food & Dining", "groceries", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
			entity.NewExpense(userID, decimal.NewFromInt(99), foodID, "Food & Dining", "may groceries", time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)),
		}}
		budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{
			entity.NewBudget(userID, foodID, "Food & Dining", decimal.NewFromInt(100), "2024-06"),
		}}
		uc := NewGetDashboardUseCase(expenseRepo, budgetRepo, clock)

		out, err := uc.Execute(ctx, GetDashboardInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.BudgetStatus) != 1 {
			t.Fatalf("expected 1 budget status, got %d", len(out.BudgetStatus))
		}
		status := out.BudgetStatus[0]
		if !status.SpentAmount.Equal(decimal.NewFromFloat(25.50)) {
			t.Errorf("expected spent 25.50, got %s", status.SpentAmount)
		}
		if status.Percentage != 25.5 {
			t.Errorf("expected 25.5%%, got %v", status.Percentage)
		}
	})
}
