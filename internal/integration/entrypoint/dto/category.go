// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-buddy/backend/internal/application/usecase/category"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponses converts use case category outputs to the API shape.
// The catalog endpoint returns a bare JSON array.
func ToCategoryResponses(categories []category.CategoryOutput) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}
