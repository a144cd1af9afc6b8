package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/middleware"
)

// tracing returns a middleware that appends its name to trace around next.
func tracing(name string, trace *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+">")
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{name: "empty", want: []string{"handler"}},
		{name: "single", names: []string{"a"}, want: []string{"a>", "handler", "<a"}},
		{
			name:  "first is outermost",
			names: []string{"recovery", "request_id", "logging"},
			want: []string{
				"recovery>", "request_id>", "logging>",
				"handler",
				"<logging", "<request_id", "<recovery",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var trace []string
			mws := make([]func(http.Handler) http.Handler, 0, len(tt.names))
			for _, n := range tt.names {
				mws = append(mws, tracing(n, &trace))
			}
			handler := middleware.Chain(mws...)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				trace = append(trace, "handler")
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, trace)
		})
	}
}

func TestStack_ServesQueryRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	stack := middleware.Stack(testLogger(&buf), nil, 5*time.Second)
	require.Len(t, stack, 6)

	var reqID, corrID string
	var hasDeadline bool
	handler := middleware.Chain(stack...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"kind":"group","url":"u"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/queries/groups", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, corrID)
	assert.True(t, hasDeadline, "handler context has no deadline")
	assert.Equal(t, reqID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, corrID, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, buf.String(), "request started")
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), reqID)
}

func TestStack_RecoversPanicAsProblem(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(middleware.Stack(nil, nil, time.Second)...)(panicking("boom"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/queries/owners", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStack_ZeroTimeoutLeavesNoDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Chain(middleware.Stack(nil, nil, 0)...)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/queries/members", http.NoBody))

	assert.False(t, hasDeadline)
}
