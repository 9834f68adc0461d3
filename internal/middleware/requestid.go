package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestIDKey is the gin context key under which the request id is stored.
const CtxRequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a unique identifier, honouring one supplied
// by an upstream proxy, and echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(CtxRequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
