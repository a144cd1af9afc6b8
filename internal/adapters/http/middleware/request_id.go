package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// maxInboundIDLen bounds caller-supplied request and correlation IDs. Longer
// values are replaced so log lines stay bounded.
const maxInboundIDLen = 128

// idKey keys the tracing IDs stored in a request context.
type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

func idFromContext(ctx context.Context, key idKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// propagateID returns middleware that reads header from the request, or asks
// fallback when the header is missing or too long, then stores the value
// under key and echoes it on the response.
func propagateID(header string, key idKey, fallback func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if id == "" || len(id) > maxInboundIDLen {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, id)))
		})
	}
}

// WithRequestID stores id as the request ID of ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID of ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, requestIDKey)
}

// RequestID reuses a caller's X-Request-ID or mints a UUID v4.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, requestIDKey, func(*http.Request) string {
		return uuid.NewString()
	})
}
