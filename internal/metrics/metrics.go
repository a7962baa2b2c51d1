// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request and completion-service metrics.
type Collector struct {
	httpStatus       *prometheus.CounterVec
	chatExchanges    prometheus.Counter
	generateFailures prometheus.Counter
	generateLatency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on the given
// registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shifa_http_status_total",
			Help: "Responses by HTTP status code",
		}, []string{"status_code"}),
		chatExchanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shifa_chat_exchanges_total",
			Help: "Completed chat exchanges (user message + assistant reply committed)",
		}),
		generateFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shifa_generate_failures_total",
			Help: "Completion service call failures",
		}),
		generateLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shifa_generate_latency_seconds",
			Help:    "Completion service call latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.chatExchanges,
		c.generateFailures,
		c.generateLatency,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordExchange() {
	c.chatExchanges.Inc()
}

func (c *Collector) RecordGenerateFailure() {
	c.generateFailures.Inc()
}

func (c *Collector) RecordGenerateLatency(d time.Duration) {
	c.generateLatency.Observe(d.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Middleware counts response status codes for every request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		c.RecordHTTPStatus(sw.status)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
