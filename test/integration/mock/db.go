// Package mock provides test doubles for the integration suite.
package mock

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-buddy/backend/internal/integration/persistence/model"
)

// NewDB opens a fresh in-memory database with the full schema. Each
// scenario gets its own database, so no cross-scenario cleanup is needed.
func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
		&model.BudgetModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate in-memory database: %w", err)
	}

	return db, nil
}
