package category

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-buddy/backend/internal/domain/entity"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) CreateBatch(_ context.Context, categories []*entity.Category) error {
	r.categories = append(r.categories, categories...)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func TestSeedCategoriesUseCase_Execute(t *testing.T) {
	t.Run("seeds the catalog when empty", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewSeedCategoriesUseCase(repo)

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Seeded != len(defaultCategories) {
			t.Errorf("Seeded = %d, want %d", out.Seeded, len(defaultCategories))
		}
		if len(repo.categories) != len(defaultCategories) {
			t.Errorf("persisted %d categories, want %d", len(repo.categories), len(defaultCategories))
		}
	})

	t.Run("is idempotent across restarts", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewSeedCategoriesUseCase(repo)

		if _, err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if out.Seeded != 0 {
			t.Errorf("Seeded = %d on second run, want 0", out.Seeded)
		}
		if len(repo.categories) != len(defaultCategories) {
			t.Errorf("catalog grew to %d entries, want %d", len(repo.categories), len(defaultCategories))
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	repo := &fakeCategoryRepo{}
	if _, err := NewSeedCategoriesUseCase(repo).Execute(context.Background()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	uc := NewListCategoriesUseCase(repo)
	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Categories) != len(defaultCategories) {
		t.Fatalf("got %d categories, want %d", len(out.Categories), len(defaultCategories))
	}
	for i, c := range out.Categories {
		if c.Name != defaultCategories[i].Name {
			t.Errorf("Categories[%d].Name = %q, want %q", i, c.Name, defaultCategories[i].Name)
		}
		if c.ID == uuid.Nil {
			t.Errorf("Categories[%d] has a nil ID", i)
		}
	}
}
