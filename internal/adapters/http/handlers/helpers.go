package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
	"github.com/jsamuelsen11/gapps-query-service/internal/ports"
)

// mapMemberQueryRequest converts a MemberQueryRequest DTO to service params.
func mapMemberQueryRequest(req *dto.MemberQueryRequest) ports.MemberQueryParams {
	return ports.MemberQueryParams{
		Domain:        gapps.FromPtr(req.Domain),
		GroupID:       gapps.FromPtr(req.GroupID),
		MemberID:      gapps.FromPtr(req.MemberID),
		StartMemberID: gapps.FromPtr(req.StartMemberID),
	}
}

// mapGroupQueryRequest converts a GroupQueryRequest DTO to service params.
func mapGroupQueryRequest(req *dto.GroupQueryRequest) ports.GroupQueryParams {
	return ports.GroupQueryParams{
		Domain:       gapps.FromPtr(req.Domain),
		GroupID:      gapps.FromPtr(req.GroupID),
		MemberID:     gapps.FromPtr(req.MemberID),
		DirectOnly:   gapps.FromPtr(req.DirectOnly),
		StartGroupID: gapps.FromPtr(req.StartGroupID),
	}
}

// mapOwnerQueryRequest converts an OwnerQueryRequest DTO to service params.
func mapOwnerQueryRequest(req *dto.OwnerQueryRequest) ports.OwnerQueryParams {
	return ports.OwnerQueryParams{
		Domain:     gapps.FromPtr(req.Domain),
		GroupID:    gapps.FromPtr(req.GroupID),
		OwnerEmail: gapps.FromPtr(req.OwnerEmail),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (64 KB).
// Query requests carry a handful of short identifiers.
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes and unknown fields are rejected. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
