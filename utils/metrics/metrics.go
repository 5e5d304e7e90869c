// Package metrics bundles the Prometheus collectors exported by the toolhub
// backend. A dedicated registry keeps the scrape surface limited to what the
// service itself registers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the directory service.
type Metrics struct {
	Registry         *prometheus.Registry
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ImportsTotal     prometheus.Counter
	ImportRowsTotal  *prometheus.CounterVec
	SuggestionsTotal prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolhub_http_requests_total",
			Help: "Total HTTP requests handled, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toolhub_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	imports := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "toolhub_csv_imports_total",
			Help: "Total CSV import runs.",
		},
	)
	importRows := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolhub_csv_import_rows_total",
			Help: "Total CSV import rows by outcome.",
		},
		[]string{"outcome"},
	)
	suggestions := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "toolhub_search_suggestions_total",
			Help: "Total search suggestion computations.",
		},
	)

	registry.MustRegister(requests, requestDuration, imports, importRows, suggestions)

	return &Metrics{
		Registry:         registry,
		RequestsTotal:    requests,
		RequestDuration:  requestDuration,
		ImportsTotal:     imports,
		ImportRowsTotal:  importRows,
		SuggestionsTotal: suggestions,
	}
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordImportRow records the outcome of one imported CSV row.
// Outcome is one of "created", "updated" or "error".
func (m *Metrics) RecordImportRow(outcome string) {
	m.ImportRowsTotal.WithLabelValues(outcome).Inc()
}

// RecordImportRun records one whole import request.
func (m *Metrics) RecordImportRun() {
	m.ImportsTotal.Inc()
}

// RecordSuggestion records one suggestion computation.
func (m *Metrics) RecordSuggestion() {
	m.SuggestionsTotal.Inc()
}
