// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-buddy/backend/internal/application/usecase/category"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category catalog endpoints.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests. The catalog is shared, so no
// authentication is required.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	categories := make([]category.CategoryOutput, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = *cat
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}
