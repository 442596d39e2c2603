package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"news_server/internal/infrastructure/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配请求 ID，便于在日志中串联
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)
		c.Set(logger.RequestIDKey, reqID)
		c.Next()
	}
}
