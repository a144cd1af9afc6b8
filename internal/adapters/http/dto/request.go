package dto

import (
	"strings"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgNotSegment   = "must be a single path segment"
)

// MemberQueryRequest represents the JSON body for building a member feed URL.
// All fields are optional at decode time; nil means "unset". A missing
// group_id is reported by the query builder, not by Validate.
type MemberQueryRequest struct {
	Domain        *string `json:"domain,omitempty"`
	GroupID       *string `json:"group_id,omitempty"`
	MemberID      *string `json:"member_id,omitempty"`
	StartMemberID *string `json:"start_member_id,omitempty"`
}

// Validate checks that any provided fields have usable values.
// Returns a *domain.ValidationError if any checks fail.
func (r *MemberQueryRequest) Validate() error {
	fields := make(map[string]string)

	checkSegment(fields, "domain", r.Domain)
	checkSegment(fields, "group_id", r.GroupID)
	checkSegment(fields, "member_id", r.MemberID)
	checkValue(fields, "start_member_id", r.StartMemberID)

	return toValidationError(fields)
}

// GroupQueryRequest represents the JSON body for building a group feed URL.
type GroupQueryRequest struct {
	Domain       *string `json:"domain,omitempty"`
	GroupID      *string `json:"group_id,omitempty"`
	MemberID     *string `json:"member_id,omitempty"`
	DirectOnly   *bool   `json:"direct_only,omitempty"`
	StartGroupID *string `json:"start_group_id,omitempty"`
}

// Validate checks that any provided fields have usable values. direct_only
// is only meaningful together with member_id.
// Returns a *domain.ValidationError if any checks fail.
func (r *GroupQueryRequest) Validate() error {
	fields := make(map[string]string)

	checkSegment(fields, "domain", r.Domain)
	checkSegment(fields, "group_id", r.GroupID)
	checkValue(fields, "member_id", r.MemberID)
	checkValue(fields, "start_group_id", r.StartGroupID)
	if r.DirectOnly != nil && r.MemberID == nil {
		fields["direct_only"] = "requires member_id"
	}

	return toValidationError(fields)
}

// OwnerQueryRequest represents the JSON body for building an owner feed URL.
type OwnerQueryRequest struct {
	Domain     *string `json:"domain,omitempty"`
	GroupID    *string `json:"group_id,omitempty"`
	OwnerEmail *string `json:"owner_email,omitempty"`
}

// Validate checks that any provided fields have usable values.
// Returns a *domain.ValidationError if any checks fail.
func (r *OwnerQueryRequest) Validate() error {
	fields := make(map[string]string)

	checkSegment(fields, "domain", r.Domain)
	checkSegment(fields, "group_id", r.GroupID)
	checkSegment(fields, "owner_email", r.OwnerEmail)

	return toValidationError(fields)
}

// checkValue records an error for a provided but blank value.
func checkValue(fields map[string]string, name string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		fields[name] = msgMustNotEmpty
	}
}

// checkSegment is checkValue for values that become a single URL path
// segment. The builders concatenate them unescaped, so separators and dot
// segments are refused here.
func checkSegment(fields map[string]string, name string, v *string) {
	checkValue(fields, name, v)
	if _, bad := fields[name]; !bad && v != nil && !gapps.IsPathSegment(*v) {
		fields[name] = msgNotSegment
	}
}

func toValidationError(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
