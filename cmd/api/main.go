// Package main is the entry point for the Expense Buddy API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/expense-buddy/backend/config"
	"github.com/expense-buddy/backend/internal/application/usecase/auth"
	"github.com/expense-buddy/backend/internal/application/usecase/budget"
	"github.com/expense-buddy/backend/internal/application/usecase/category"
	"github.com/expense-buddy/backend/internal/application/usecase/dashboard"
	"github.com/expense-buddy/backend/internal/application/usecase/expense"
	"github.com/expense-buddy/backend/internal/infra/db"
	"github.com/expense-buddy/backend/internal/infra/server/router"
	"github.com/expense-buddy/backend/internal/integration/adapters"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/controller"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-buddy/backend/internal/integration/persistence"
	"github.com/expense-buddy/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Expense Buddy API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
		&model.BudgetModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	clock := adapters.NewSystemClock()

	// Seed the category catalog on first startup
	seedUseCase := category.NewSeedCategoriesUseCase(categoryRepo)
	if _, err := seedUseCase.Execute(context.Background()); err != nil {
		slog.Error("Failed to seed category catalog", "error", err)
		os.Exit(1)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create catalog, ledger, budget and dashboard use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, clock)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, expenseRepo, clock)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, expenseRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(expenseRepo, budgetRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	// Create middleware. The rate limiter runs only when Redis is enabled.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis connection failed, login rate limiting disabled", "error", err)
			redisClient = nil
		}
	}
	loginRateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
