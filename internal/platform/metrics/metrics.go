package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the enrichment pipeline.
type Metrics struct {
	Registry                *prometheus.Registry
	ExternalRequestsTotal   *prometheus.CounterVec
	ExternalRequestDuration *prometheus.HistogramVec
	ExternalErrorsTotal     *prometheus.CounterVec
	ProductsProcessedTotal  *prometheus.CounterVec
	GenerationsTotal        *prometheus.CounterVec
	BatchesFinishedTotal    *prometheus.CounterVec
	HTTPRequestsTotal       *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enricher_external_requests_total",
			Help: "Total HTTP requests issued to external APIs.",
		},
		[]string{"dependency"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enricher_external_request_duration_seconds",
			Help:    "HTTP request latency for external APIs.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dependency"},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enricher_external_errors_total",
			Help: "Total number of external API errors by type.",
		},
		[]string{"dependency", "error_type"},
	)
	products := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enricher_products_processed_total",
			Help: "Total number of processed products by final scraping status.",
		},
		[]string{"status"},
	)
	generations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enricher_generations_total",
			Help: "Total number of content generations by slot and outcome.",
		},
		[]string{"slot", "outcome"},
	)
	batches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enricher_batches_finished_total",
			Help: "Total number of finished batch runs by status.",
		},
		[]string{"status"},
	)

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enricher_http_requests_total",
			Help: "Total HTTP requests served by route and status code.",
		},
		[]string{"method", "route", "code"},
	)
	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enricher_http_request_duration_seconds",
			Help:    "Served HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	registry.MustRegister(
		requests, requestDuration, errorsTotal, products, generations, batches,
		httpRequests, httpDuration,
	)

	return &Metrics{
		Registry:                registry,
		ExternalRequestsTotal:   requests,
		ExternalRequestDuration: requestDuration,
		ExternalErrorsTotal:     errorsTotal,
		ProductsProcessedTotal:  products,
		GenerationsTotal:        generations,
		BatchesFinishedTotal:    batches,
		HTTPRequestsTotal:       httpRequests,
		HTTPRequestDuration:     httpDuration,
	}
}

// ObserveRequest counts external request and records its duration.
func (m *Metrics) ObserveRequest(dependency string, d time.Duration) {
	if m == nil {
		return
	}
	m.ExternalRequestsTotal.WithLabelValues(dependency).Inc()
	m.ExternalRequestDuration.WithLabelValues(dependency).Observe(d.Seconds())
}

// IncError increments external errors counter.
func (m *Metrics) IncError(dependency, errorType string) {
	if m == nil {
		return
	}
	m.ExternalErrorsTotal.WithLabelValues(dependency, errorType).Inc()
}

// IncProduct increments processed products counter.
func (m *Metrics) IncProduct(status string) {
	if m == nil {
		return
	}
	m.ProductsProcessedTotal.WithLabelValues(status).Inc()
}

// IncGeneration increments content generations counter.
func (m *Metrics) IncGeneration(slot string, success bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.GenerationsTotal.WithLabelValues(slot, outcome).Inc()
}

// IncBatch increments finished batches counter.
func (m *Metrics) IncBatch(status string) {
	if m == nil {
		return
	}
	m.BatchesFinishedTotal.WithLabelValues(status).Inc()
}

// ObserveHTTP counts served HTTP request and records its duration.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
