package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WaleiChang/expense-tracker/logger"
)

// RequestLogger tags each request with an id and logs its outcome.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Set("request_id", requestID)
	c.Writer.Header().Set("X-Request-ID", requestID)

	c.Next()

	logger.Get().Info("request completed",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)))
}
