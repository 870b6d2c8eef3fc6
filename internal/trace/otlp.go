// Package trace records UI interactions as OpenTelemetry spans and exports them
// over OTLP/HTTP when an endpoint is configured.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName is the tracer name used for all UI spans.
const InstrumentationName = "essentials/ui"

// Options configures the OTLP exporter.
type Options struct {
	Endpoint    string // host:port of the collector; empty disables export
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer provider for the process.
type Provider struct {
	sdk    *sdktrace.TracerProvider // nil when disabled
	tracer oteltrace.Tracer
}

// NewProvider creates an OTLP-backed provider, or a no-op provider when
// opts.Endpoint is empty. The returned provider is never nil.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	clientOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "essentials"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newSDKProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

func newSDKProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{sdk: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Enabled reports whether spans leave the process.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Recorder returns a SelectionRecorder backed by this provider.
func (p *Provider) Recorder() *SelectionRecorder {
	return &SelectionRecorder{tracer: p.tracer}
}

// Shutdown flushes pending spans and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
