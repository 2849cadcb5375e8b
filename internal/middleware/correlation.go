package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationID attaches a correlation ID to every request, taking the
// caller's X-Correlation-ID header when present and minting one otherwise.
// The ID is echoed back in the response and forwarded on outbound calls.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		c.Set("correlationID", correlationID)
		ctx := context.WithValue(c.Request.Context(), "correlationID", correlationID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Correlation-ID", correlationID)
		c.Next()
	}
}
