package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleMascotMessage returns an encouragement message for the expense just
// recorded, chosen from the pool matching its category.
func (h *Handler) HandleMascotMessage(c *gin.Context) {
	category := c.Query("category")
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.mascot.Message(category, amount)})
}
