package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disabled adds nothing", func(t *testing.T) {
		assert.Empty(t, Tracing(TracingConfig{}))
	})

	t.Run("records server span with request id", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

		r := gin.New()
		r.Use(RequestID())
		r.Use(Tracing(TracingConfig{ServiceName: "clinicfinder", Enabled: true, TracerProvider: tp})...)
		r.GET("/api/search", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/api/search?concern=x", nil)
		req.Header.Set(RequestIDKey, "req-1")
		r.ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Contains(t, spans[0].Name(), "/api/search")
		assert.Contains(t, spans[0].Attributes(), attribute.String("request_id", "req-1"))
	})
}

func TestHTTPMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	r := gin.New()
	r.Use(HTTPMetrics(mp.Meter("http.server")))
	r.GET("/api/enquiries", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/enquiries", nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = m
		}
	}
	require.Contains(t, found, "http_server_request_total")
	require.Contains(t, found, "http_server_request_duration_seconds")
	require.Contains(t, found, "http_server_active_requests")

	sum, ok := found["http_server_request_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
	route, _ := sum.DataPoints[0].Attributes.Value("http.route")
	assert.Equal(t, "/api/enquiries", route.AsString())
}

func TestHTTPMetrics_NilMeter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMetrics(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProfiling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, cfg := range []ProfilingConfig{DefaultProfilingConfig(), {}} {
		r := gin.New()
		r.Use(Profiling(cfg))
		r.GET("/api/search", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, path := range []string{"/api/search", "/health"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}
}

func TestResourceFromRoute(t *testing.T) {
	tests := map[string]string{
		"/api/enquiries":  "enquiries",
		"/api/search":     "search",
		"/swagger/*any":   "swagger",
		"/api/things/:id": "things",
		"unknown":         "",
		"/":               "",
	}
	for route, want := range tests {
		t.Run(route, func(t *testing.T) {
			assert.Equal(t, want, resourceFromRoute(route))
		})
	}
}
