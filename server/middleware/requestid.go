package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the request ID header, inbound and outbound.
const HeaderRequestID = "X-Request-ID"

// ContextRequestID is the Gin context key holding the request ID.
const ContextRequestID = "request_id"

// RequestID returns middleware that propagates the inbound request ID or
// generates one, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
