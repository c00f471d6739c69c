// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/expense-buddy/backend/internal/application/usecase/auth"
	"github.com/expense-buddy/backend/internal/application/usecase/budget"
	"github.com/expense-buddy/backend/internal/application/usecase/category"
	"github.com/expense-buddy/backend/internal/application/usecase/dashboard"
	"github.com/expense-buddy/backend/internal/application/usecase/expense"
	"github.com/expense-buddy/backend/internal/infra/server/router"
	"github.com/expense-buddy/backend/internal/integration/adapters"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/controller"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-buddy/backend/internal/integration/persistence"
	"github.com/expense-buddy/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Auth: tokens per registered email, plus the active one.
	accessToken string
	tokens      map[string]string

	// Scenario state
	clock      *mock.Time
	categories map[string]string // category name -> ID
	lastIDs    map[string]string // "expense_id"/"budget_id" -> last created ID
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerAuthSteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext boots the full application on a fresh in-memory
// database and wraps it in an httptest server.
func newTestContext() (*TestContext, error) {
	db, err := mock.NewDB()
	if err != nil {
		return nil, err
	}

	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, 24*time.Hour)
	clock := mock.NewTime()

	seedUseCase := category.NewSeedCategoriesUseCase(categoryRepo)
	if _, err := seedUseCase.Execute(context.Background()); err != nil {
		return nil, err
	}

	r := router.NewRouter(
		controller.NewHealthController(func() bool { return true }),
		controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		),
		controller.NewCategoryController(category.NewListCategoriesUseCase(categoryRepo)),
		controller.NewExpenseController(
			expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo),
			expense.NewListExpensesUseCase(expenseRepo),
			expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo),
			expense.NewDeleteExpenseUseCase(expenseRepo),
		),
		controller.NewBudgetController(
			budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, clock),
			budget.NewListBudgetsUseCase(budgetRepo, expenseRepo, clock),
			budget.NewUpdateBudgetUseCase(budgetRepo, expenseRepo),
			budget.NewDeleteBudgetUseCase(budgetRepo),
		),
		controller.NewDashboardController(dashboard.NewGetDashboardUseCase(expenseRepo, budgetRepo, clock)),
		middleware.NewRateLimiter(nil, 5, time.Minute),
		middleware.NewAuthMiddleware(tokenService, userRepo),
	)
	engine := r.Setup("test")

	tc := &TestContext{
		engine:     engine,
		server:     httptest.NewServer(engine),
		tokens:     make(map[string]string),
		clock:      clock,
		categories: make(map[string]string),
		lastIDs:    make(map[string]string),
	}

	catalog, err := categoryRepo.FindAll(context.Background())
	if err != nil {
		return nil, err
	}
	for _, c := range catalog {
		tc.categories[c.Name] = c.ID.String()
	}

	return tc, nil
}
