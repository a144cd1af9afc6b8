// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack returns the pipeline in execution order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// with Chain or passed to the router.
package middleware
