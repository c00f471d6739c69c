// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a spending category in the shared catalog.
// The catalog is seeded once at startup and is read-only afterwards;
// all users see the same set of categories.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, icon, color string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
}
