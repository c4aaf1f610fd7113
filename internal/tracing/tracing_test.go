package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestInitTracingWithoutEndpoint(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tracer, shutdown, err := InitTracing(ctx, "test-service", "", logger)
	if err != nil {
		t.Fatalf("InitTracing() error = %v", err)
	}

	_, span := tracer.Start(ctx, "unit")
	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span with a valid context")
	}
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown error = %v", err)
	}
}
