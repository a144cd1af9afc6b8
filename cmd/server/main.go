// Package main runs the feed query service: an HTTP front for the
// hosted-groups query URL builders.
//
// The process reads APP_PROFILE (local, dev, qa, prod), loads configs/ for
// that profile, wires the graph with samber/do v2 and serves until SIGINT or
// SIGTERM, then drains in-flight requests and flushes telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/gapps-query-service/internal/adapters/http"
	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gapps-query-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/gapps-query-service/internal/app"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
	"github.com/jsamuelsen11/gapps-query-service/internal/platform/config"
	"github.com/jsamuelsen11/gapps-query-service/internal/platform/health"
	"github.com/jsamuelsen11/gapps-query-service/internal/platform/logging"
	"github.com/jsamuelsen11/gapps-query-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/gapps-query-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Getenv, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gapps-query-service: %v\n", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. getenv and logOut are parameters so the
// process environment stays at the edge.
func run(ctx context.Context, getenv func(string) string, logOut io.Writer) error {
	profile := getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set (want one of local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading %s config: %w", profile, err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	tel, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := tel.flush(flushCtx); err != nil {
			logger.Error("telemetry flush failed", slog.Any("error", err))
		}
	}()

	injector := newContainer(cfg, logger, tel.metrics)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}

	endpoint := do.MustInvoke[gapps.Endpoint](injector)
	logger.Info("feed endpoint configured",
		slog.String("profile", profile),
		slog.String("group_root", endpoint.GroupRoot()),
		slog.String("default_domain", cfg.Feed.DefaultDomain),
	)

	return serve(ctx, server, logger)
}

// serve starts server and blocks until ctx is done or the listener fails.
// On cancellation it drains requests for up to drainTimeout.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down", slog.Any("cause", context.Cause(ctx)))
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining requests failed", slog.Any("error", err))
	}
	<-errCh

	logger.Info("shutdown complete")
	return nil
}

// telemetryStack holds the OpenTelemetry providers. Every field is nil when
// telemetry is disabled, and the query service and middleware treat nil
// metrics as "do not record".
type telemetryStack struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (t *telemetryStack) flush(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		errs = append(errs, t.tracer.Shutdown(ctx))
	}
	if t.meter != nil {
		errs = append(errs, t.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*telemetryStack, error) {
	if !cfg.Enabled {
		return &telemetryStack{}, nil
	}

	stack := &telemetryStack{}
	fail := func(step string, err error) (*telemetryStack, error) {
		_ = stack.flush(ctx)
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	var err error
	if stack.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return fail("tracer", err)
	}
	if stack.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return fail("meter", err)
	}
	if stack.metrics, err = telemetry.NewMetrics(stack.meter, cfg.ServiceName); err != nil {
		return fail("metrics", err)
	}
	return stack, nil
}

// newContainer registers the service graph. Providers are lazy; resolving
// *adapthttp.Server builds everything reachable from it.
func newContainer(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	do.ProvideValue(injector, cfg.Feed.Endpoint())

	do.Provide(injector, func(i do.Injector) (ports.QueryService, error) {
		return app.NewQueryService(
			do.MustInvoke[gapps.Endpoint](i),
			cfg.Feed.DefaultDomain,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[gapps.Endpoint](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.QueryHandler, error) {
		return handlers.NewQueryHandler(do.MustInvoke[ports.QueryService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		chain := middleware.Stack(
			do.MustInvoke[*slog.Logger](i),
			do.MustInvoke[*telemetry.Metrics](i),
			cfg.Server.WriteTimeout,
		)
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.QueryHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			chain...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector
}
