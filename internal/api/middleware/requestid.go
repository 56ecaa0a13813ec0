package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/uxforge/agent-api/internal/shared/id"
)

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key for the request id.
const requestIDKey = "request_id"

// RequestID tags every request with a ULID for log correlation. A caller
// supplied id is kept; otherwise a fresh one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = id.NewRequestID().String()
		}

		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID, if any.
func GetRequestID(c *gin.Context) string {
	rid, _ := c.Get(requestIDKey)
	s, _ := rid.(string)
	return s
}
