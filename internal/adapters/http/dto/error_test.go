package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain"
)

const membersPath = "/api/v1/queries/members"

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: &domain.ValidationError{Fields: map[string]string{"domain": "must not be empty"}}, wantStatus: http.StatusBadRequest},
		{name: "wrapped missing field", err: fmt.Errorf("building member query: %w", &domain.MissingFieldError{Field: "groupId"}), wantStatus: http.StatusBadRequest},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "endpoint unavailable", err: fmt.Errorf("%w: bad base uri", domain.ErrUnavailable), wantStatus: http.StatusBadGateway},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("oops"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			dto.WriteErrorResponse(rec, httptest.NewRequest(http.MethodPost, membersPath, nil), tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeProblem(t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), resp.Title)
			assert.Equal(t, "about:blank", resp.Type)
			assert.Equal(t, membersPath, resp.Instance)
			assert.Equal(t, tt.err.Error(), resp.Detail)
		})
	}
}

func TestNewErrorResponse_ValidationDetailsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"member_id": "must not be empty",
		"domain":    "must be a single path segment",
		"group_id":  "must not be empty",
	}}

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, membersPath, nil), verr)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.domain", Message: "must be a single path segment"},
		{Location: "body.group_id", Message: "must not be empty"},
		{Location: "body.member_id", Message: "must not be empty"},
	}, got.Errors)
}

func TestNewErrorResponse_MissingField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field        string
		wantLocation string
	}{
		{field: "groupId", wantLocation: "body.group_id"},
		{field: "domain", wantLocation: "body.domain"},
		{field: "startMemberId", wantLocation: "body.start_member_id"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()

			err := &domain.MissingFieldError{Field: tt.field}
			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, membersPath, nil), err)

			assert.Equal(t, tt.field+" must not be null", got.Detail)
			assert.Equal(t, []dto.ErrorDetail{{Location: tt.wantLocation, Message: "is required"}}, got.Errors)
		})
	}
}

func TestNewErrorResponse_NoDetailsForOtherErrors(t *testing.T) {
	t.Parallel()

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodPost, membersPath, nil), domain.ErrUnavailable)

	assert.Nil(t, got.Errors)
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, membersPath, nil)

	dto.WriteProblem(rec, req, http.StatusMethodNotAllowed, "DELETE is not supported")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	resp := decodeProblem(t, rec)
	assert.Equal(t, "Method Not Allowed", resp.Title)
	assert.Equal(t, "DELETE is not supported", resp.Detail)
	assert.Empty(t, resp.Errors)
}
