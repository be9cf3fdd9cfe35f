// Package telemetry sets up the exporters behind the failure reporters:
// an OTLP trace exporter and a prometheus textfile written on exit.
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

// TracerName is the instrumentation scope of boundary failure spans.
const TracerName = "medcare/boundary"

// Tracing holds the tracer provider. A zero or nil Tracing is disabled and
// hands out a no-op tracer.
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// NewTracing creates an OTLP/HTTP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns a disabled Tracing otherwise.
func NewTracing(ctx context.Context, serviceName string) (*Tracing, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return &Tracing{}, nil
	}
	return newTracing(ctx, serviceName, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
}

func newTracing(ctx context.Context, serviceName string, opts ...otlptracehttp.Option) (*Tracing, error) {
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if serviceName == "" {
		serviceName = "medcare"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracing{provider: provider}, nil
}

// Enabled reports whether spans are exported.
func (t *Tracing) Enabled() bool {
	return t != nil && t.provider != nil
}

// Tracer returns the tracer for boundary failure spans.
func (t *Tracing) Tracer() oteltrace.Tracer {
	if !t.Enabled() {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return t.provider.Tracer(TracerName)
}

// Shutdown flushes pending spans and closes the exporter.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
