// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/gapps). This root
// package holds sentinel errors and the validation error types shared by
// the query builders, the application layer, and the HTTP adapter.
package domain
