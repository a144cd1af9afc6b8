// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Feed      FeedConfig      `koanf:"feed"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// FeedConfig holds the hosted-groups feed endpoint that query URLs are built
// against, and the domain used when a request does not name one.
type FeedConfig struct {
	BaseURI       string `koanf:"base_uri"`
	GroupPath     string `koanf:"group_path"`
	DefaultDomain string `koanf:"default_domain"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Endpoint returns the feed endpoint described by the config.
func (f FeedConfig) Endpoint() gapps.Endpoint {
	return gapps.Endpoint{
		BaseFeedURI: f.BaseURI,
		GroupPath:   f.GroupPath,
	}
}
