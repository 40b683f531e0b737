package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	t.Setenv(TracesEndpointEnv, "")

	if Enabled() {
		t.Fatal("Expected telemetry to be disabled without an endpoint")
	}

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown must never be nil")
	}

	_, span := Tracer("test").Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("Expected a no-op span without an endpoint")
	}
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestEnabledReadsEitherVariable(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	t.Setenv(TracesEndpointEnv, "http://localhost:4318/v1/traces")
	if !Enabled() {
		t.Error("Expected the traces endpoint alone to enable telemetry")
	}
}
