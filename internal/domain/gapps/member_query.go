package gapps

import "github.com/jsamuelsen11/gapps-query-service/internal/domain"

// paramStart is the pagination cursor parameter shared by the list feeds.
const paramStart = "start"

// Compile-time interface check.
var _ Builder = (*MemberQuery)(nil)

// MemberQuery builds URLs for the member feed of a group:
//
//	<base><group path>/<domain>/<groupId>/member[/<memberId>][?start=<startMemberId>]
type MemberQuery struct {
	Base
	groupID  Optional[string]
	memberID Optional[string]
}

// NewMemberQuery creates a MemberQuery against endpoint with the given
// initial values. Any of them may be None.
func NewMemberQuery(endpoint Endpoint, domainName, groupID, memberID, startMemberID Optional[string]) *MemberQuery {
	q := &MemberQuery{Base: newBase(endpoint)}
	q.SetDomain(domainName)
	q.SetGroupID(groupID)
	q.SetMemberID(memberID)
	q.SetStartMemberID(startMemberID)
	return q
}

// SetGroupID sets the group whose members are queried. Required by QueryURL.
func (q *MemberQuery) SetGroupID(v Optional[string]) {
	q.groupID = v
}

// GroupID returns the group id.
func (q *MemberQuery) GroupID() Optional[string] {
	return q.groupID
}

// SetMemberID narrows the query to a single member. None lists all members.
func (q *MemberQuery) SetMemberID(v Optional[string]) {
	q.memberID = v
}

// MemberID returns the member id.
func (q *MemberQuery) MemberID() Optional[string] {
	return q.memberID
}

// SetStartMemberID sets the first member id returned when listing members.
// None removes the cursor from the query string.
func (q *MemberQuery) SetStartMemberID(v Optional[string]) {
	q.SetParam(paramStart, v)
}

// StartMemberID returns the pagination cursor.
func (q *MemberQuery) StartMemberID() Optional[string] {
	return q.Param(paramStart)
}

// QueryURL returns the member feed URL. It fails with a
// *domain.MissingFieldError when the group id is unset.
func (q *MemberQuery) QueryURL() (string, error) {
	groupID, ok := q.groupID.Get()
	if !ok {
		return "", &domain.MissingFieldError{Field: "groupId"}
	}

	uri := q.domainRoot() + "/" + groupID + "/member"
	if memberID, ok := q.memberID.Get(); ok {
		uri += "/" + memberID
	}
	return uri + q.QueryString(), nil
}
