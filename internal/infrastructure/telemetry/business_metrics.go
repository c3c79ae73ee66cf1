package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clinicfinder"

// BusinessMetrics exposes Prometheus counters for searches, enquiries, seeding and exports.
// It satisfies the Recorder interfaces of the application services.
type BusinessMetrics struct {
	registry *prometheus.Registry

	searches         *prometheus.CounterVec
	enquiriesCreated prometheus.Counter
	seeds            *prometheus.CounterVec
	exports          *prometheus.CounterVec
	exportRows       prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewBusinessMetrics registers all collectors on a private registry
func NewBusinessMetrics() *BusinessMetrics {
	m := &BusinessMetrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Concern searches by outcome (matched, no_match, rejected).",
		}, []string{"outcome"}),
		enquiriesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enquiries_created_total",
			Help:      "Enquiries stored.",
		}),
		seeds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_runs_total",
			Help:      "Catalog seed runs by result.",
		}, []string{"result"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Enquiry exports by result.",
		}, []string{"result"}),
		exportRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "export_last_rows",
			Help:      "Rows written by the last successful export.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		m.searches,
		m.enquiriesCreated,
		m.seeds,
		m.exports,
		m.exportRows,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordSearch counts one search
func (m *BusinessMetrics) RecordSearch(outcome string) {
	m.searches.WithLabelValues(outcome).Inc()
}

// RecordEnquiryCreated counts one stored enquiry
func (m *BusinessMetrics) RecordEnquiryCreated() {
	m.enquiriesCreated.Inc()
}

// RecordSeed counts one seed run
func (m *BusinessMetrics) RecordSeed(success bool) {
	m.seeds.WithLabelValues(result(success)).Inc()
}

// RecordExport counts one export run
func (m *BusinessMetrics) RecordExport(rows int, err error) {
	m.exports.WithLabelValues(result(err == nil)).Inc()
	if err == nil {
		m.exportRows.Set(float64(rows))
	}
}

// Middleware records request counts and latency per matched route
func (m *BusinessMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *BusinessMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *BusinessMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
