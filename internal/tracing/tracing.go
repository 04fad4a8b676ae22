// Package tracing starts an OpenTelemetry span for every routed request.
package tracing

import (
	"net/http"

	"github.com/catatsuy/methodtree"
	"github.com/catatsuy/methodtree/internal/respwriter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "github.com/catatsuy/methodtree"

// Middleware traces each request with a server span named "METHOD pattern".
//
// The tracer comes from the global provider, which is a no-op until the
// program installs one with otel.SetTracerProvider.
func Middleware(tracerName string) methodtree.Middleware {
	if tracerName == "" {
		tracerName = defaultTracerName
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			tracer := otel.Tracer(tracerName)
			ctx, span := tracer.Start(req.Context(), req.Method+" "+req.Pattern,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("http.route", req.Pattern),
					attribute.String("url.path", req.URL.Path),
				),
			)
			defer span.End()

			rec := respwriter.Wrap(w)
			next.ServeHTTP(rec, req.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.response.status_code", rec.Status))
			if rec.Status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.Status))
			}
		})
	}
}
