package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id between client and server.
	RequestIDHeader = "X-Request-ID"
	// ContextRequestIDKey is the gin context key holding the request id.
	ContextRequestIDKey = "request_id"
)

// RequestID ensures each request carries a correlation id: the inbound
// X-Request-ID header is reused when present, otherwise a UUID is minted.
// The id is stored in the gin context and echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set(ContextRequestIDKey, id)
		ctx.Writer.Header().Set(RequestIDHeader, id)
		ctx.Next()
	}
}

// GetRequestID retrieves the request id from the gin context, empty when unset.
func GetRequestID(ctx *gin.Context) string {
	if id, ok := ctx.Get(ContextRequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
