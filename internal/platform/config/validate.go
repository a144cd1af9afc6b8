package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// Validate reports every invalid setting at once, joined with errors.Join.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Feed.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	for key, d := range map[string]time.Duration{
		"server.read_timeout":  s.ReadTimeout,
		"server.write_timeout": s.WriteTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", key))
		}
	}
	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	return errors.Join(
		oneOf("log.level", l.Level, logLevels),
		oneOf("log.format", l.Format, logFormats),
	)
}

// validate checks the endpoint shape and that the default domain can be used
// as a single path segment.
func (f *FeedConfig) validate() error {
	var errs []error
	if err := f.Endpoint().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("feed: %w", err))
	}
	if f.DefaultDomain != "" && !gapps.IsPathSegment(f.DefaultDomain) {
		errs = append(errs, fmt.Errorf("feed.default_domain must be a bare domain name, got %q", f.DefaultDomain))
	}
	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	if err := oneOf("telemetry.exporter", t.Exporter, exporters); err != nil {
		return err
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		return errors.New("telemetry.endpoint must not be empty when exporter is otlp")
	}
	return nil
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}
