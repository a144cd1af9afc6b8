package gapps

import "github.com/jsamuelsen11/gapps-query-service/internal/domain"

// Compile-time interface check.
var _ Builder = (*OwnerQuery)(nil)

// OwnerQuery builds URLs for the owner feed of a group:
//
//	<base><group path>/<domain>/<groupId>/owner[/<ownerEmail>]
type OwnerQuery struct {
	Base
	groupID    Optional[string]
	ownerEmail Optional[string]
}

// NewOwnerQuery creates an OwnerQuery against endpoint.
func NewOwnerQuery(endpoint Endpoint, domainName, groupID, ownerEmail Optional[string]) *OwnerQuery {
	q := &OwnerQuery{Base: newBase(endpoint)}
	q.SetDomain(domainName)
	q.SetGroupID(groupID)
	q.SetOwnerEmail(ownerEmail)
	return q
}

// SetGroupID sets the group whose owners are queried. Required by QueryURL.
func (q *OwnerQuery) SetGroupID(v Optional[string]) {
	q.groupID = v
}

// GroupID returns the group id.
func (q *OwnerQuery) GroupID() Optional[string] {
	return q.groupID
}

// SetOwnerEmail narrows the query to a single owner.
func (q *OwnerQuery) SetOwnerEmail(v Optional[string]) {
	q.ownerEmail = v
}

// OwnerEmail returns the owner email.
func (q *OwnerQuery) OwnerEmail() Optional[string] {
	return q.ownerEmail
}

// QueryURL returns the owner feed URL. It fails with a
// *domain.MissingFieldError when the group id is unset.
func (q *OwnerQuery) QueryURL() (string, error) {
	groupID, ok := q.groupID.Get()
	if !ok {
		return "", &domain.MissingFieldError{Field: "groupId"}
	}

	uri := q.domainRoot() + "/" + groupID + "/owner"
	if email, ok := q.ownerEmail.Get(); ok {
		uri += "/" + email
	}
	return uri + q.QueryString(), nil
}
