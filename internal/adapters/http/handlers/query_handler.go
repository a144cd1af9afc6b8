package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/gapps-query-service/internal/ports"
)

// QueryHandler handles HTTP requests that build hosted-groups feed URLs.
type QueryHandler struct {
	svc ports.QueryService
}

// NewQueryHandler creates a new QueryHandler with the given service port.
func NewQueryHandler(svc ports.QueryService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// MemberQuery handles POST /api/v1/queries/members.
func (h *QueryHandler) MemberQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberQueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	url, err := h.svc.MemberQueryURL(r.Context(), mapMemberQueryRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQueryURLResponse(dto.KindMember, url))
}

// GroupQuery handles POST /api/v1/queries/groups.
func (h *QueryHandler) GroupQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.GroupQueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	url, err := h.svc.GroupQueryURL(r.Context(), mapGroupQueryRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQueryURLResponse(dto.KindGroup, url))
}

// OwnerQuery handles POST /api/v1/queries/owners.
func (h *QueryHandler) OwnerQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.OwnerQueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	url, err := h.svc.OwnerQueryURL(r.Context(), mapOwnerQueryRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQueryURLResponse(dto.KindOwner, url))
}
