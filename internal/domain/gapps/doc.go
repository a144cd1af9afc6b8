// Package gapps builds request URLs for the hosted-groups feed API.
//
// Each builder (MemberQuery, GroupQuery, OwnerQuery) embeds a Base that holds
// the hosted domain and an ordered set of query-string parameters, and
// implements Builder:
//
//	q := gapps.NewMemberQuery(gapps.DefaultEndpoint,
//	    gapps.Some("example.com"), gapps.Some("sales"),
//	    gapps.None[string](), gapps.None[string](),
//	)
//	q.SetStartMemberID(gapps.Some("abc"))
//	u, err := q.QueryURL()
//	// https://apps-apis.google.com/a/feeds/group/2.0/example.com/sales/member?start=abc
//
// Builders do no I/O. A builder is a plain value holder and is not safe for
// concurrent mutation; distinct instances are independent.
package gapps
