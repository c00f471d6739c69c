// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-buddy/backend/internal/application/usecase/dashboard"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/dto"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the aggregated overview endpoint.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{UserID: user.ID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
