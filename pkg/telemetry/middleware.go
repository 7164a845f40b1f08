package telemetry

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName names the tracer used for inbound HTTP spans
	TracerName = "eventease-http"

	// TraceIDHeader echoes the trace id so clients can quote it in reports
	TraceIDHeader = "X-Trace-ID"

	// requestIDKey matches the gin key set by the request id middleware
	requestIDKey = "request_id"
)

// TracingMiddleware starts a server span per request. It must run after the
// request id middleware for the id to land on the span.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(TracerName)

	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		// Unmatched paths share one span name so ids in URLs don't explode cardinality
		route := c.FullPath()
		spanName := c.Request.Method + " " + route
		if route == "" {
			spanName = c.Request.Method + " unmatched"
		}

		attrs := []attribute.KeyValue{
			semconv.HTTPMethod(c.Request.Method),
			attribute.String("http.target", c.Request.URL.Path),
			semconv.NetHostName(c.Request.Host),
			semconv.UserAgentOriginal(c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
			attribute.String("service.name", serviceName),
		}
		if route != "" {
			attrs = append(attrs, semconv.HTTPRoute(route))
		}
		if id := c.GetString(requestIDKey); id != "" {
			attrs = append(attrs, attribute.String("http.request_id", id))
		}

		ctx, span := tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindServer), trace.WithAttributes(attrs...))
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPStatusCode(status))
		if len(c.Errors) > 0 {
			span.RecordError(c.Errors.Last())
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
