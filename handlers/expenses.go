package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WaleiChang/expense-tracker/ledger"
	"github.com/WaleiChang/expense-tracker/logger"
	"github.com/WaleiChang/expense-tracker/models"
	"github.com/WaleiChang/expense-tracker/mongodb"
)

// HandleListExpenses returns every expense, newest first. Optional month and
// category query params narrow the result; "all" or absence is a wildcard.
func (h *Handler) HandleListExpenses(c *gin.Context) {
	expenses, err := h.store.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Get().Error("failed to list expenses",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	month := c.DefaultQuery("month", ledger.FilterAll)
	category := c.DefaultQuery("category", ledger.FilterAll)
	c.JSON(http.StatusOK, ledger.Filter(expenses, month, category))
}

// HandleCreateExpense validates and persists a new expense, returning the
// stored record with its assigned id.
func (h *Handler) HandleCreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Warn("invalid create expense payload",
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	expense := req.Expense()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().UnixMilli()
	}

	created, err := h.store.InsertExpense(c.Request.Context(), expense)
	if err != nil {
		logger.Get().Error("failed to create expense",
			zap.String("title", expense.Title),
			zap.Float64("amount", expense.Amount),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	logger.Get().Info("expense created",
		zap.String("id", created.ID.Hex()),
		zap.String("category", created.Category),
		zap.Float64("amount", created.Amount))
	c.JSON(http.StatusCreated, created)
}

// HandleDeleteExpense removes the expense with the given id. An id that
// matches nothing is still a success; only a malformed id is rejected.
func (h *Handler) HandleDeleteExpense(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteExpense(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongodb.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		logger.Get().Error("failed to delete expense",
			zap.String("id", id),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
