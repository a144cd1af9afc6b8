package gapps

import "strings"

// Builder is implemented by every group-feed query type.
type Builder interface {
	// QueryURL returns the feed URL for the builder's current state.
	QueryURL() (string, error)
}

// Base holds the state shared by all group-feed builders: the endpoint, the
// hosted domain, and the ordered query-string parameters. Builders embed it.
type Base struct {
	endpoint Endpoint
	domain   Optional[string]
	params   Params
}

func newBase(endpoint Endpoint) Base {
	return Base{endpoint: endpoint}
}

// Endpoint returns the endpoint URLs are built against.
func (b *Base) Endpoint() Endpoint {
	return b.endpoint
}

// Domain returns the hosted domain.
func (b *Base) Domain() Optional[string] {
	return b.domain
}

// SetDomain sets or clears the hosted domain.
func (b *Base) SetDomain(v Optional[string]) {
	b.domain = v
}

// Param returns the query-string parameter stored under key.
func (b *Base) Param(key string) Optional[string] {
	if v, ok := b.params.Get(key); ok {
		return Some(v)
	}
	return None[string]()
}

// SetParam stores v under key, or removes key when v is unset so that it
// does not render at all.
func (b *Base) SetParam(key string, v Optional[string]) {
	if s, ok := v.Get(); ok {
		b.params.Set(key, s)
		return
	}
	b.params.Delete(key)
}

// Params returns the builder's parameter mapping.
func (b *Base) Params() *Params {
	return &b.params
}

// QueryString renders the parameter mapping, including the leading '?'.
func (b *Base) QueryString() string {
	return b.params.Encode()
}

// domainRoot returns the endpoint group root followed by "/" + domain. An
// unset domain renders as an empty segment.
func (b *Base) domainRoot() string {
	return b.endpoint.GroupRoot() + "/" + b.domain.OrElse("")
}

// IsPathSegment reports whether s stays one path segment when concatenated
// into a feed URL. It rejects '/', '?' and '#' as well as the "." and ".."
// dot segments. Builders never call it; they concatenate values as given.
func IsPathSegment(s string) bool {
	return !strings.ContainsAny(s, "/?#") && s != "." && s != ".."
}
