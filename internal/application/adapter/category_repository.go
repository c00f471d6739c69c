// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for catalog persistence operations.
type CategoryRepository interface {
	// CreateBatch inserts a set of categories in one operation (catalog seeding).
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves every category in the catalog.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// CountAll returns the number of categories in the catalog.
	CountAll(ctx context.Context) (int64, error)
}
