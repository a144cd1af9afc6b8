// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

// Query kinds reported in QueryURLResponse.
const (
	KindMember = "member"
	KindGroup  = "group"
	KindOwner  = "owner"
)

// QueryURLResponse carries a built feed URL.
type QueryURLResponse struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// ToQueryURLResponse wraps a built URL for the given query kind.
func ToQueryURLResponse(kind, url string) QueryURLResponse {
	return QueryURLResponse{Kind: kind, URL: url}
}
