package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	RecordsCreated      *prometheus.CounterVec
	RecordsUpdated      *prometheus.CounterVec
	RecordsDeleted      *prometheus.CounterVec
	ValidationFailures  *prometheus.CounterVec
	DocumentsGenerated  prometheus.Counter
	DocumentFailures    *prometheus.CounterVec
	DocumentDuration    prometheus.Histogram
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates all metrics and registers them on reg. Tests pass a fresh
// prometheus.NewRegistry() so instances never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legalflow_records_created_total",
			Help: "Total number of records created per entity kind",
		}, []string{"entity"}),
		RecordsUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legalflow_records_updated_total",
			Help: "Total number of records replaced per entity kind",
		}, []string{"entity"}),
		RecordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legalflow_records_deleted_total",
			Help: "Total number of records deleted per entity kind, cascades included",
		}, []string{"entity"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legalflow_validation_failures_total",
			Help: "Total number of submissions rejected by validation per entity kind",
		}, []string{"entity"}),
		DocumentsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "legalflow_documents_generated_total",
			Help: "Total number of documents returned by the text generator",
		}),
		DocumentFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legalflow_document_failures_total",
			Help: "Total number of failed document requests by reason",
		}, []string{"reason"}),
		DocumentDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "legalflow_document_generation_duration_seconds",
			Help:    "Time spent waiting on the text generator",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "legalflow_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route pattern and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementRecordsCreated(entity string) {
	m.RecordsCreated.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementRecordsUpdated(entity string) {
	m.RecordsUpdated.WithLabelValues(entity).Inc()
}

// AddRecordsDeleted counts n deletions at once, for cascades.
func (m *Metrics) AddRecordsDeleted(entity string, n int) {
	m.RecordsDeleted.WithLabelValues(entity).Add(float64(n))
}

func (m *Metrics) IncrementValidationFailures(entity string) {
	m.ValidationFailures.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementDocumentsGenerated() {
	m.DocumentsGenerated.Inc()
}

func (m *Metrics) IncrementDocumentFailures(reason string) {
	m.DocumentFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveDocumentDuration(d time.Duration) {
	m.DocumentDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, d time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
