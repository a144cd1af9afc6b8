package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/gapps-query-service/internal/adapters/http"
	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
	"github.com/jsamuelsen11/gapps-query-service/internal/ports"
	"github.com/jsamuelsen11/gapps-query-service/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockQueryService) {
	t.Helper()
	svc := mocks.NewMockQueryService(t)
	registry := mocks.NewMockHealthRegistry(t)

	qh := handlers.NewQueryHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(qh, hh)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/queries/members"},
		{http.MethodPost, "/api/v1/queries/groups"},
		{http.MethodPost, "/api/v1/queries/owners"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockQueryService(t)
	registry := mocks.NewMockHealthRegistry(t)

	qh := handlers.NewQueryHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(qh, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationMemberQuery(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().MemberQueryURL(mock.Anything, ports.MemberQueryParams{
		GroupID: gapps.Some("sales"),
	}).Return("https://apps-apis.google.com/a/feeds/group/2.0//sales/member", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/queries/members", bytes.NewBufferString(`{"group_id":"sales"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_UnmatchedRoutesReturnProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/v1/queries/nonexistent", wantStatus: http.StatusNotFound},
		{name: "unknown root", method: http.MethodPost, path: "/nonexistent", wantStatus: http.StatusNotFound},
		{name: "get on query route", method: http.MethodGet, path: "/api/v1/queries/members", wantStatus: http.StatusMethodNotAllowed},
		{name: "post on probe", method: http.MethodPost, path: "/health/live", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, _ := newTestRouter(t)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			var body dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding problem: %v", err)
			}
			if body.Instance != tt.path {
				t.Errorf("instance = %q, want %q", body.Instance, tt.path)
			}
		})
	}
}
