package serve

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans from this package. The tracer comes from the
// global provider; configure that in main() before serving.
const tracerName = "dirty"

// startSpan begins a server span for the request when tracing is enabled.
// The returned span is nil otherwise.
func (c config) startSpan(r *http.Request) (*http.Request, trace.Span) {
	if !c.tracing {
		return r, nil
	}
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "dirty "+r.URL.Path,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("dirty.path", r.URL.Path)),
	)
	return r.WithContext(ctx), span
}

// endSpan records the outcome and closes the span. A nil span is a no-op.
func endSpan(span trace.Span, fragments, written int64, err error) {
	if span == nil {
		return
	}
	span.SetAttributes(
		attribute.Int64("dirty.fragments", fragments),
		attribute.Int64("dirty.bytes", written),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
