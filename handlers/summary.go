package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WaleiChang/expense-tracker/ledger"
	"github.com/WaleiChang/expense-tracker/logger"
)

// HandleListMonths returns the distinct months with recorded expenses, most
// recent first. The client uses this to build its month filter.
func (h *Handler) HandleListMonths(c *gin.Context) {
	expenses, err := h.store.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Get().Error("failed to list months",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": ledger.DistinctMonths(expenses)})
}

// HandleMonthlySummary returns the total and per-category breakdown for the
// requested month. Absent or "all" defaults to the current month.
func (h *Handler) HandleMonthlySummary(c *gin.Context) {
	expenses, err := h.store.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Get().Error("failed to build monthly summary",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	month := c.DefaultQuery("month", ledger.FilterAll)
	c.JSON(http.StatusOK, ledger.MonthlySummary(expenses, month, time.Now()))
}

// HandleWeeklySummary returns the current week's category and daily buckets,
// Monday through now.
func (h *Handler) HandleWeeklySummary(c *gin.Context) {
	expenses, err := h.store.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Get().Error("failed to build weekly summary",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, ledger.WeeklySummary(expenses, time.Now()))
}
