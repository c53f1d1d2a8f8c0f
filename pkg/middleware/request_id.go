package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "cid"
)

// RequestID reuses an incoming X-Request-ID or mints a new one, stores it in the
// gin context under "cid" and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(RequestIDHeader)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Set(RequestIDKey, cid)
		c.Writer.Header().Set(RequestIDHeader, cid)
		c.Next()
	}
}
