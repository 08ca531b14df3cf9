package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/commercekit/logger"
)

// RequestLogger returns middleware that logs each completed request with its
// method, path, status, and duration.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]any{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}
		if id, ok := c.Get(ContextRequestID); ok {
			fields["request_id"] = id
		}
		if c.Writer.Status() >= 500 {
			log.Error("request failed", fields)
		} else {
			log.Info("request completed", fields)
		}
	}
}
