// Package telemetry sets up OpenTelemetry tracing for navigation spans.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope for board spans.
const TracerName = "griddle/board"

// Provider exports spans to an OTLP/HTTP endpoint.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// New creates a provider if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "griddle"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return &Provider{
		provider: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		),
	}, nil
}

// Tracer returns the board tracer, or a no-op tracer when p is nil.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.provider.Tracer(TracerName)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
