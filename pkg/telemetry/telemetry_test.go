package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return recorder
}

func TestTracingMiddleware_NamesSpanByRoute(t *testing.T) {
	recorder := installRecorder(t)

	r := gin.New()
	r.Use(TracingMiddleware("eventease"))
	r.GET("/venues/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/venues/abc", nil))
	assert.NotEmpty(t, w.Header().Get(TraceIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere/123", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "GET /venues/:id", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "GET unmatched", spans[2].Name())
}

func TestTracingMiddleware_RecordsRequestID(t *testing.T) {
	recorder := installRecorder(t)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("request_id", "req-42") })
	r.Use(TracingMiddleware("eventease"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "http.request_id" {
			found = kv.Value.AsString() == "req-42"
		}
	}
	assert.True(t, found)
}

func TestInit_Disabled(t *testing.T) {
	tel, err := Init(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, tel)
	assert.NoError(t, Shutdown(context.Background()))

	tel, err = Init(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, tel)
}

func TestStartSpan_RecordError(t *testing.T) {
	recorder := installRecorder(t)
	_, err := Init(context.Background(), nil)
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "VenueService.Create")
	assert.NotEmpty(t, GetTraceID(ctx))
	RecordError(span, errors.New("db down"), "failed to create venue")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "failed to create venue", spans[0].Status().Description)
}

func TestWithRecord(t *testing.T) {
	recorder := installRecorder(t)
	_, err := Init(context.Background(), nil)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "service.venue.get", WithRecord("venue", "venue-1"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "venue", attrs["record.type"])
	assert.Equal(t, "venue-1", attrs["record.id"])
}
