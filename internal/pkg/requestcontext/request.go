package requestcontext

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

// RequestIDKey is the context key for request ID
const RequestIDKey ContextKey = "request_id"

// WithRequestID returns a copy of ctx carrying requestID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// Logger tags logger with the request ID found in ctx, if any
func Logger(ctx context.Context, logger logrus.FieldLogger) logrus.FieldLogger {
	if reqID := GetRequestID(ctx); reqID != "" {
		return logger.WithField(string(RequestIDKey), reqID)
	}
	return logger
}
