package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

// EndSpan records the outcome of an operation and ends span. Client
// errors are tagged with their kind; only store failures mark the span as
// failed.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		kind := apperr.KindOf(err)
		span.SetAttributes(attribute.String("error.kind", kind.String()))
		if kind == apperr.KindStore {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
