package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID tags every request and response with an X-Request-ID,
// generating one when the client did not send any.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Set("requestID", reqID)
		c.Next()
	}
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"remote_ip": c.ClientIP(),
		})
		if reqID := c.Writer.Header().Get("X-Request-ID"); reqID != "" {
			entry = entry.WithField("request_id", reqID)
		}
		entry.Info("Incoming request")

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		completedEntry := entry.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
		})

		switch {
		case len(c.Errors) > 0:
			completedEntry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case statusCode >= 500:
			completedEntry.Error("Request completed with server error")
		case statusCode >= 400:
			completedEntry.Warn("Request completed with client error")
		default:
			completedEntry.Info("Request completed successfully")
		}
	}
}
