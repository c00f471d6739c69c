// Package category contains category-catalog use cases.
package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/application/adapter"
)

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles listing the shared category catalog.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, cat := range categories {
		output.Categories[i] = &CategoryOutput{
			ID:        cat.ID,
			Name:      cat.Name,
			Icon:      cat.Icon,
			Color:     cat.Color,
			CreatedAt: cat.CreatedAt,
		}
	}

	return output, nil
}
