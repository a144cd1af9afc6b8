package gapps

import "strconv"

const (
	paramMember     = "member"
	paramDirectOnly = "directOnly"
)

// Compile-time interface check.
var _ Builder = (*GroupQuery)(nil)

// GroupQuery builds URLs for the group feed of a domain. Without a group id
// it lists groups; with a member id it lists the groups that member belongs
// to, optionally restricted to direct membership.
type GroupQuery struct {
	Base
	groupID Optional[string]
}

// NewGroupQuery creates a GroupQuery against endpoint.
func NewGroupQuery(endpoint Endpoint, domainName, groupID Optional[string]) *GroupQuery {
	q := &GroupQuery{Base: newBase(endpoint)}
	q.SetDomain(domainName)
	q.SetGroupID(groupID)
	return q
}

// SetGroupID selects a single group.
func (q *GroupQuery) SetGroupID(v Optional[string]) {
	q.groupID = v
}

// GroupID returns the group id.
func (q *GroupQuery) GroupID() Optional[string] {
	return q.groupID
}

// SetMemberID lists the groups the given member belongs to.
func (q *GroupQuery) SetMemberID(v Optional[string]) {
	q.SetParam(paramMember, v)
}

// MemberID returns the member filter.
func (q *GroupQuery) MemberID() Optional[string] {
	return q.Param(paramMember)
}

// SetDirectOnly restricts a member filter to groups the member belongs to
// directly rather than through nested groups.
func (q *GroupQuery) SetDirectOnly(v Optional[bool]) {
	if b, ok := v.Get(); ok {
		q.SetParam(paramDirectOnly, Some(strconv.FormatBool(b)))
		return
	}
	q.SetParam(paramDirectOnly, None[string]())
}

// DirectOnly returns the direct membership flag.
func (q *GroupQuery) DirectOnly() Optional[bool] {
	s, ok := q.Param(paramDirectOnly).Get()
	if !ok {
		return None[bool]()
	}
	return Some(s == "true")
}

// SetStartGroupID sets the first group id returned when listing groups.
func (q *GroupQuery) SetStartGroupID(v Optional[string]) {
	q.SetParam(paramStart, v)
}

// StartGroupID returns the pagination cursor.
func (q *GroupQuery) StartGroupID() Optional[string] {
	return q.Param(paramStart)
}

// QueryURL returns the group feed URL. A member filter appends a trailing
// "/" to the path before the query string.
func (q *GroupQuery) QueryURL() (string, error) {
	uri := q.domainRoot()
	if groupID, ok := q.groupID.Get(); ok {
		uri += "/" + groupID
	}
	if q.MemberID().IsSet() {
		uri += "/"
	}
	return uri + q.QueryString(), nil
}
