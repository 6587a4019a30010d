package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// correlationIDKey is the key used to store the request correlation ID.
// Using a custom type prevents collisions.
const correlationIDKey = contextKey("correlationID")

// GetCorrelationIDFromContext retrieves the correlation ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetCorrelationIDFromContext(c *gin.Context) (string, bool) {
	idVal, exists := c.Get(string(correlationIDKey))
	if !exists {
		// check in the request context as well
		if ctxVal := c.Request.Context().Value(correlationIDKey); ctxVal != nil {
			if id, ok := ctxVal.(string); ok {
				return id, true
			}
		}
		return "", false
	}

	id, ok := idVal.(string)
	if !ok {
		return "", false
	}
	return id, true
}

// GetCorrelationIDFromCtx retrieves the correlation ID from a plain
// context.Context, empty when absent.
func GetCorrelationIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
