package http

import (
	"errors"
	"net/http"

	"itinera/pkg/logger"
	"itinera/services/expense/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
	logger         *logger.Logger
}

func NewExpenseHandler(expenseUseCase usecase.ExpenseUseCase, logger *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
		logger:         logger,
	}
}

// userID writes a 401 when the request carries no authenticated user.
func userID(c *gin.Context) (string, bool) {
	id := c.GetString("user_id")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

func (h *ExpenseHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Expense request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// AddExpense godoc
// @Summary      Add expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.AddInput true "Expense"
// @Success      200  {object}  entity.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req usecase.AddInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseUseCase.AddExpense(uid, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// ListExpenses godoc
// @Summary      List expenses
// @Description  The caller's expenses for one itinerary, oldest first
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        itinerary_id query string true "Itinerary ID"
// @Success      200  {array}   entity.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	expenses, err := h.expenseUseCase.ListExpenses(uid, c.Query("itinerary_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense godoc
// @Summary      Delete expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id query string true "Expense ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.expenseUseCase.DeleteExpense(uid, c.Query("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSummary godoc
// @Summary      Budget summary
// @Description  Spending against the itinerary's recommended daily budget
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        itinerary_id query string true "Itinerary ID"
// @Success      200  {object}  entity.Summary
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	summary, err := h.expenseUseCase.GetSummary(uid, c.Query("itinerary_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
