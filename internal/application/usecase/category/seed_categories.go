// Package category contains category-catalog use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-buddy/backend/internal/application/adapter"
	"github.com/expense-buddy/backend/internal/domain/entity"
)

// defaultCategory describes one entry of the seeded catalog.
type defaultCategory struct {
	Name  string
	Icon  string
	Color string
}

// defaultCategories is the catalog inserted on first startup.
var defaultCategories = []defaultCategory{
	{Name: "Food & Dining", Icon: "🍽️", Color: "#FF6B6B"},
	{Name: "Transportation", Icon: "🚗", Color: "#4ECDC4"},
	{Name: "Utilities", Icon: "⚡", Color: "#45B7D1"},
	{Name: "Entertainment", Icon: "🎬", Color: "#FFA07A"},
	{Name: "Healthcare", Icon: "🏥", Color: "#98D8C8"},
	{Name: "Shopping", Icon: "🛍️", Color: "#F7DC6F"},
	{Name: "Education", Icon: "📚", Color: "#BB8FCE"},
	{Name: "Travel", Icon: "✈️", Color: "#85C1E9"},
	{Name: "Other", Icon: "📝", Color: "#A5A5A5"},
}

// SeedCategoriesOutput represents the output of catalog seeding.
type SeedCategoriesOutput struct {
	Seeded int
}

// SeedCategoriesUseCase inserts the default category catalog on first
// startup. The count check makes the operation naturally idempotent, so
// it is safe to run on every boot without a persistent "seeded" flag.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the catalog when it is empty.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) (*SeedCategoriesOutput, error) {
	count, err := uc.categoryRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return &SeedCategoriesOutput{Seeded: 0}, nil
	}

	categories := make([]*entity.Category, len(defaultCategories))
	for i, dc := range defaultCategories {
		categories[i] = entity.NewCategory(dc.Name, dc.Icon, dc.Color)
	}

	if err := uc.categoryRepo.CreateBatch(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("Default categories initialized", "count", len(categories))

	return &SeedCategoriesOutput{Seeded: len(categories)}, nil
}
