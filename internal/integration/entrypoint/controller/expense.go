// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-buddy/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-buddy/backend/internal/domain/error"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/dto"
	"github.com/expense-buddy/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense ledger endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:      user.ID,
		Amount:      req.Amount,
		CategoryID:  categoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests with filter query parameters.
func (c *ExpenseController) List(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input, err := parseListQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}
	input.UserID = user.ID

	output, err := c.listUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Listings are bare JSON arrays; paging stays in the query parameters.
	resp := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		resp[i] = dto.ToExpenseResponse(e)
	}

	ctx.JSON(http.StatusOK, resp)
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		UserID:      user.ID,
		ExpenseID:   expenseID,
		Amount:      req.Amount,
		CategoryID:  categoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    user.ID,
		ExpenseID: expenseID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// parseListQuery maps the list endpoint's query parameters onto the use
// case input. Dates accept RFC 3339 or plain YYYY-MM-DD.
func parseListQuery(ctx *gin.Context) (*expense.ListExpensesInput, error) {
	input := &expense.ListExpensesInput{
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sort_by"),
		SortOrder: ctx.Query("sort_order"),
	}

	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid category_id")
		}
		input.CategoryID = &id
	}
	if raw := ctx.Query("start_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, errors.New("invalid start_date")
		}
		input.StartDate = &t
	}
	if raw := ctx.Query("end_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, errors.New("invalid end_date")
		}
		input.EndDate = &t
	}
	if raw := ctx.Query("min_amount"); raw != "" {
		amt, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("invalid min_amount")
		}
		input.MinAmount = &amt
	}
	if raw := ctx.Query("max_amount"); raw != "" {
		amt, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("invalid max_amount")
		}
		input.MaxAmount = &amt
	}
	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, errors.New("invalid page")
		}
		input.Page = page
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return nil, errors.New("invalid limit")
		}
		input.Limit = limit
	}

	return input, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeExpenseCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated reports a request that lost its user mid-flight.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
