package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const ContextRequestIDKey = "requestID"

// RequestIDMiddleware tags every request with an ID, echoed back in the
// X-Request-ID header for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// getRequestID returns the request's correlation ID, if any.
func getRequestID(c *gin.Context) string {
	if id, ok := c.Get(ContextRequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// abortWithError sends a standardized JSON error response and stops the
// handler chain.
func abortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
