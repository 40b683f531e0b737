// Package telemetry wires OpenTelemetry tracing for maze generation and
// play sessions. Without an OTLP endpoint in the environment every tracer is
// a no-op, so the game never blocks on an exporter.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "tui-maze"
	serviceVersion = "0.1.0"

	// EndpointEnv is the standard variable that enables export.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// TracesEndpointEnv enables export for traces only.
	TracesEndpointEnv = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
)

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(EndpointEnv) != "" || os.Getenv(TracesEndpointEnv) != ""
}

// Setup installs a batching OTLP/HTTP tracer provider when Enabled.
// The exporter reads the standard OTEL_* environment variables.
//
// The returned shutdown flushes pending spans; it is never nil.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	nop := func(context.Context) error { return nil }
	if !Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return nop, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nop, err
	}

	// Own resource, not merged with resource.Default(), to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
