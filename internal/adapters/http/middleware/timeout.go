package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/dto"
)

// Timeout bounds each request by timeout. The handler runs on its own
// goroutine against a buffered writer and sees the deadline on its context.
// If it finishes in time the buffer is sent; otherwise the client gets a 504
// problem response and later handler writes fail with http.ErrHandlerTimeout.
// A handler panic is re-raised on the serving goroutine for Recovery.
// A non-positive timeout disables the middleware.
//
// Under chi the handler routes on a private copy of the routing context.
// The matched pattern is copied back once it finishes, or looked up from the
// routing tree on timeout, so outer middleware can read the route without
// racing an abandoned handler.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rctx := chi.RouteContext(ctx)
			ctx, own := detachRoute(ctx, rctx)

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				adoptRoute(rctx, own)
				bw.sendTo(w)
			case <-ctx.Done():
				bw.abandon()
				lookupRoute(rctx, r)
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// detachRoute returns ctx carrying a fresh routing context seeded from rctx.
// The router recycles rctx once the request returns, so a handler that
// outlives its deadline must never hold it.
func detachRoute(ctx context.Context, rctx *chi.Context) (context.Context, *chi.Context) {
	if rctx == nil {
		return ctx, nil
	}
	own := chi.NewRouteContext()
	own.Routes = rctx.Routes
	own.RoutePath = rctx.RoutePath
	own.RouteMethod = rctx.RouteMethod
	own.RoutePatterns = slices.Clone(rctx.RoutePatterns)
	own.URLParams.Keys = slices.Clone(rctx.URLParams.Keys)
	own.URLParams.Values = slices.Clone(rctx.URLParams.Values)
	return context.WithValue(ctx, chi.RouteCtxKey, own), own
}

// adoptRoute copies what the finished handler matched back onto rctx.
func adoptRoute(rctx, own *chi.Context) {
	if rctx == nil {
		return
	}
	rctx.RoutePatterns = own.RoutePatterns
	rctx.URLParams = own.URLParams
}

// lookupRoute records the pattern r would match without touching the
// routing context the abandoned handler is still using.
func lookupRoute(rctx *chi.Context, r *http.Request) {
	if rctx == nil || rctx.Routes == nil {
		return
	}
	path := rctx.RoutePath
	if path == "" {
		path = r.URL.Path
	}
	if pattern := rctx.Routes.Find(chi.NewRouteContext(), r.Method, path); pattern != "" {
		rctx.RoutePatterns = []string{pattern}
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether to
// send it. The mutex is shared by the handler goroutine and the select.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.abandoned {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

// sendTo copies the buffered response to w.
func (bw *bufferedWriter) sendTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if bw.body.Len() > 0 {
		_, _ = w.Write(bw.body.Bytes())
	}
}

func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.abandoned = true
}
