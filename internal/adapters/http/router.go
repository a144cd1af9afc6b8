// Package http is the inbound HTTP adapter: the chi route table and the
// server lifecycle around it.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain"
)

// NewRouter mounts the health probes and the query API. middlewares wrap
// every route, unmatched ones included, in the order given.
//
//	GET  /health/live
//	GET  /health/ready
//	POST /api/v1/queries/{members,groups,owners}
func NewRouter(
	queryHandler *handlers.QueryHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed,
			fmt.Sprintf("%s is not supported on %s", req.Method, req.URL.Path))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	r.Route("/api/v1/queries", func(r chi.Router) {
		r.Post("/members", queryHandler.MemberQuery)
		r.Post("/groups", queryHandler.GroupQuery)
		r.Post("/owners", queryHandler.OwnerQuery)
	})

	return r
}
