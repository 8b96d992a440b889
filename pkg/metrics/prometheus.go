// Package metrics provides Prometheus metrics for the dragnet aggregation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Source fetch metrics
	pagesFetched  prometheus.Counter
	recordsParsed prometheus.Counter
	fetchErrors   prometheus.Counter
	fetchLatency  prometheus.Histogram

	// Pipeline metrics
	recordsDropped       prometheus.Counter
	classifications      *prometheus.CounterVec
	placeholderFallbacks prometheus.Counter

	// Snapshot metrics
	snapshotRebuildDuration prometheus.Histogram
	snapshotLastUnix        prometheus.Gauge
	snapshotRecords         prometheus.Gauge
	refreshTotal            prometheus.Counter
	refreshErrors           prometheus.Counter

	// Photo-aging collaborator metrics
	agingRequests prometheus.Counter
	agingErrors   prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Component error tracking
	errorsByComponent *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dragnet",
		subsystem:        "aggregator",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pagesFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_pages_fetched_total",
		Help:      "Total number of source pages fetched successfully",
	})

	m.recordsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_records_parsed_total",
		Help:      "Total number of raw records decoded from the source",
	})

	m.fetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_fetch_errors_total",
		Help:      "Total number of failed source fetches (network, status, decode)",
	})

	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_fetch_latency_milliseconds",
		Help:      "Histogram of per-page source fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.recordsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_dropped_total",
		Help:      "Total number of raw records dropped during normalization",
	})

	m.classifications = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "classifications_total",
		Help:      "Total number of classified records by case category",
	}, []string{"category"})

	m.placeholderFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "placeholder_fallbacks_total",
		Help:      "Total number of records that fell back to a placeholder image",
	})

	m.snapshotRebuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_rebuild_duration_milliseconds",
		Help:      "Histogram of snapshot rebuild duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_rebuild_unix",
		Help:      "Unix timestamp of the last successful snapshot rebuild",
	})

	m.snapshotRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_records",
		Help:      "Number of normalized persons in the current snapshot",
	})

	m.refreshTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_total",
		Help:      "Total number of completed refresh cycles",
	})

	m.refreshErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_errors_total",
		Help:      "Total number of refresh cycles that kept the previous snapshot",
	})

	m.agingRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aging_requests_total",
		Help:      "Total number of photo-aging collaborator calls",
	})

	m.agingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aging_errors_total",
		Help:      "Total number of failed photo-aging collaborator calls",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Total number of errors by component and error type",
	}, []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers operating on the global manager.

// RecordPageFetched increments the fetched pages counter.
func RecordPageFetched() {
	globalManager.pagesFetched.Inc()
}

// RecordRecordsParsed adds to the decoded raw record counter.
func RecordRecordsParsed(n int) {
	globalManager.recordsParsed.Add(float64(n))
}

// RecordFetchError increments the source fetch error counter.
func RecordFetchError() {
	globalManager.fetchErrors.Inc()
}

// RecordFetchLatency records a per-page fetch latency sample.
func RecordFetchLatency(latencyMs float64) {
	globalManager.fetchLatency.Observe(latencyMs)
}

// RecordRecordDropped increments the dropped record counter.
func RecordRecordDropped() {
	globalManager.recordsDropped.Inc()
}

// RecordClassification increments the per-category classification counter.
func RecordClassification(category string) {
	globalManager.classifications.WithLabelValues(category).Inc()
}

// RecordPlaceholderFallback increments the placeholder fallback counter.
func RecordPlaceholderFallback() {
	globalManager.placeholderFallbacks.Inc()
}

// RecordSnapshotRebuild records a snapshot rebuild and its duration.
func RecordSnapshotRebuild(durationMs float64, atUnix int64) {
	globalManager.snapshotRebuildDuration.Observe(durationMs)
	globalManager.snapshotLastUnix.Set(float64(atUnix))
}

// UpdateSnapshotRecords sets the snapshot record count gauge.
func UpdateSnapshotRecords(count int) {
	globalManager.snapshotRecords.Set(float64(count))
}

// RecordRefresh increments the completed refresh counter.
func RecordRefresh() {
	globalManager.refreshTotal.Inc()
}

// RecordRefreshError increments the failed refresh counter.
func RecordRefreshError() {
	globalManager.refreshErrors.Inc()
}

// RecordAgingRequest increments the photo-aging request counter.
func RecordAgingRequest() {
	globalManager.agingRequests.Inc()
}

// RecordAgingError increments the photo-aging error counter.
func RecordAgingError() {
	globalManager.agingErrors.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration sample.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent increments the per-component error counter.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
