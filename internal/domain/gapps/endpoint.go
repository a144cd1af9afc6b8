package gapps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain"
)

const (
	// DefaultBaseFeedURI is the root of the hosted-groups feed API.
	DefaultBaseFeedURI = "https://apps-apis.google.com/a/feeds"
	// DefaultGroupPath identifies the group resource within the feed API.
	DefaultGroupPath = "/group/2.0"
)

// DefaultEndpoint is the public feed API endpoint.
var DefaultEndpoint = Endpoint{
	BaseFeedURI: DefaultBaseFeedURI,
	GroupPath:   DefaultGroupPath,
}

// Endpoint holds the two path constants every group-feed URL starts with.
// Builders treat them as opaque prefixes.
type Endpoint struct {
	BaseFeedURI string
	GroupPath   string
}

// GroupRoot returns BaseFeedURI followed by GroupPath.
func (e Endpoint) GroupRoot() string {
	return e.BaseFeedURI + e.GroupPath
}

// Validate checks that the base URI is absolute and the group path is rooted.
func (e Endpoint) Validate() error {
	u, err := url.Parse(e.BaseFeedURI)
	if err != nil {
		return fmt.Errorf("parsing base feed uri %q: %w", e.BaseFeedURI, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base feed uri must be absolute, got %q", e.BaseFeedURI)
	}
	if strings.HasSuffix(e.BaseFeedURI, "/") {
		return fmt.Errorf("base feed uri must not end with '/', got %q", e.BaseFeedURI)
	}
	if !strings.HasPrefix(e.GroupPath, "/") {
		return fmt.Errorf("group path must start with '/', got %q", e.GroupPath)
	}
	return nil
}

// Name returns the identifier used when the endpoint is registered as a
// readiness health checker.
func (e Endpoint) Name() string {
	return "gapps-endpoint"
}

// HealthCheck reports whether the configured endpoint can produce URLs.
// No network call is made. Failures match domain.ErrUnavailable.
func (e Endpoint) HealthCheck(_ context.Context) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return nil
}
