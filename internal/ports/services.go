package ports

import (
	"context"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
)

// QueryService defines the service port for building hosted-groups feed URLs.
// Implemented by the application layer; called by inbound adapters (handlers).
// No method performs network I/O.
type QueryService interface {
	// MemberQueryURL returns the member feed URL for a group.
	// Returns a *domain.MissingFieldError (ErrMissingRequiredField) if the
	// group id is unset.
	MemberQueryURL(ctx context.Context, params MemberQueryParams) (string, error)

	// GroupQueryURL returns the group feed URL for a domain.
	GroupQueryURL(ctx context.Context, params GroupQueryParams) (string, error)

	// OwnerQueryURL returns the owner feed URL for a group.
	// Returns a *domain.MissingFieldError (ErrMissingRequiredField) if the
	// group id is unset.
	OwnerQueryURL(ctx context.Context, params OwnerQueryParams) (string, error)
}

// MemberQueryParams holds the inputs of a member feed query. An unset Domain
// falls back to the service's configured default domain.
type MemberQueryParams struct {
	Domain        gapps.Optional[string]
	GroupID       gapps.Optional[string]
	MemberID      gapps.Optional[string]
	StartMemberID gapps.Optional[string]
}

// GroupQueryParams holds the inputs of a group feed query.
type GroupQueryParams struct {
	Domain       gapps.Optional[string]
	GroupID      gapps.Optional[string]
	MemberID     gapps.Optional[string]
	DirectOnly   gapps.Optional[bool]
	StartGroupID gapps.Optional[string]
}

// OwnerQueryParams holds the inputs of an owner feed query.
type OwnerQueryParams struct {
	Domain     gapps.Optional[string]
	GroupID    gapps.Optional[string]
	OwnerEmail gapps.Optional[string]
}
