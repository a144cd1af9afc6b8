package ports

import "context"

// HealthChecker is implemented by any component that can report its health.
// Examples: the feed endpoint configuration.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "gapps-endpoint").
	Name() string

	// HealthCheck returns nil when the component is usable. It must
	// return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds checker to the registry. A checker whose Name matches
	// an earlier registration replaces it.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the results keyed
	// by checker name. A nil value means the component is ready.
	CheckAll(ctx context.Context) map[string]error
}
