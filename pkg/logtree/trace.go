// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Tracing helpers for the public entrypoints.

package logtree

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope of spans created here.
const tracerName = "github.com/getoutreach/logview/pkg/logtree"

// startSpan starts a span using the global tracer provider, a no-op
// unless the binary installs one.
func startSpan(ctx context.Context, name, path string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attribute.String("logtree.path", path)))
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
