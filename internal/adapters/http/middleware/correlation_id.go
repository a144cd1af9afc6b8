package middleware

import (
	"context"
	"net/http"
)

const headerCorrelationID = "X-Correlation-ID"

// WithCorrelationID stores id as the correlation ID of ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation ID of ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, correlationIDKey)
}

// CorrelationID reuses a caller's X-Correlation-ID. Without one, the request
// ID becomes the correlation ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, correlationIDKey, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}
