package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

const (
	// RequestIDHeader заголовок с идентификатором запроса.
	RequestIDHeader = "X-Request-ID"
	// ContextRequestIDKey ключ идентификатора запроса в gin.Context.
	ContextRequestIDKey = "request_id"
)

// RequestLogger присваивает запросу идентификатор и пишет строку в лог по завершении.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		logger.Entry().WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}).Info("request")
	}
}
