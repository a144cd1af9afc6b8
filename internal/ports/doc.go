// Package ports declares the interfaces the HTTP adapter depends on.
// QueryService is implemented in internal/app; the health ports are
// implemented in internal/platform/health and by gapps.Endpoint.
package ports
