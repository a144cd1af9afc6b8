// Package telemetry sets up the OpenTelemetry trace and metric providers and
// the instruments the service records.
//
// Exporters are "stdout" for development and "otlp" (OTLP/HTTP) for
// deployed environments:
//
//	tp, err := telemetry.InitTracer(ctx, "gapps-query-service", "otlp", "http://otel-collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "gapps-query-service", "otlp", "http://otel-collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "gapps-query-service")
//	defer tp.Shutdown(ctx)
//	defer mp.Shutdown(ctx)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// meterScope is the instrumentation scope for all instruments.
const meterScope = "github.com/jsamuelsen11/gapps-query-service"

// Instrument names.
const (
	MetricServerDuration = "http.server.request.duration"
	MetricServerTotal    = "http.server.request.total"
	MetricQueryBuilds    = "gapps.query.build.total"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrResult      = attribute.Key("result")
	AttrQueryKind   = attribute.Key("gapps.query.kind")
	AttrServiceName = attribute.Key("service.name")
)

// Metrics holds the instruments recorded by the HTTP middleware and the
// query service. A nil *Metrics means telemetry is off.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	QueryBuildTotal       metric.Int64Counter
}

// InitTracer installs a batching TracerProvider as the global provider,
// along with W3C trace-context and baggage propagation. The caller owns
// Shutdown.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	spans, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a periodically exporting MeterProvider as the global
// provider. The caller owns Shutdown.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	metrics, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the service instruments on mp. The meter scope
// carries serviceName as service.name.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterScope,
		metric.WithInstrumentationAttributes(AttrServiceName.String(serviceName)),
	)

	var m Metrics
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	m.ServerRequestDuration, err = meter.Float64Histogram(MetricServerDuration,
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	collect(err)
	m.ServerRequestTotal, err = meter.Int64Counter(MetricServerTotal,
		metric.WithDescription("Incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	collect(err)
	m.QueryBuildTotal, err = meter.Int64Counter(MetricQueryBuilds,
		metric.WithDescription("Feed query URLs built, by kind and result"),
		metric.WithUnit("{query}"),
	)
	collect(err)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}
	return &m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	return newExporter(exporter, endpoint,
		func() (sdktrace.SpanExporter, error) {
			return stdouttrace.New(stdouttrace.WithPrettyPrint())
		},
		func(target collector) (sdktrace.SpanExporter, error) {
			opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target.hostPort)}
			if target.insecure {
				opts = append(opts, otlptracehttp.WithInsecure())
			}
			return otlptracehttp.New(ctx, opts...)
		},
	)
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	return newExporter(exporter, endpoint,
		func() (sdkmetric.Exporter, error) {
			return stdoutmetric.New()
		},
		func(target collector) (sdkmetric.Exporter, error) {
			opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target.hostPort)}
			if target.insecure {
				opts = append(opts, otlpmetrichttp.WithInsecure())
			}
			return otlpmetrichttp.New(ctx, opts...)
		},
	)
}

// collector is an OTLP/HTTP target parsed from a configured endpoint such as
// "http://otel-collector:4318".
type collector struct {
	hostPort string
	insecure bool
}

func parseCollector(endpoint string) collector {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{hostPort: endpoint, insecure: true}
	}
	return collector{hostPort: u.Host, insecure: u.Scheme != "https"}
}

// newExporter dispatches on the exporter name shared by traces and metrics.
func newExporter[E any](exporter, endpoint string, stdout func() (E, error), otlp func(collector) (E, error)) (E, error) {
	var zero E
	switch exporter {
	case ExporterStdout:
		return stdout()
	case ExporterOTLP:
		if endpoint == "" {
			return zero, errors.New("otlp exporter requires an endpoint")
		}
		return otlp(parseCollector(endpoint))
	default:
		return zero, fmt.Errorf("unsupported exporter %q", exporter)
	}
}
