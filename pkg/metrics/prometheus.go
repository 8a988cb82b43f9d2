// Package metrics provides Prometheus metrics for the sportfit recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Core business metrics
	recommendations       *prometheus.CounterVec
	recommendationLatency prometheus.Histogram
	recommendationErrors  *prometheus.CounterVec
	fallbackUsed          prometheus.Counter
	summaries             prometheus.Counter
	reports               *prometheus.CounterVec
	catalogueSize         prometheus.Gauge

	// Refinement metrics
	llmRequests *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec

	// Cache metrics
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sportfit",
		subsystem:        "recommender",
		histogramBuckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 5000, 15000},
		customLabels:     map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.recommendations = auto.NewCounterVec(
		m.counterOpts("recommendations_total", "Total number of recommendation lists served by source"),
		[]string{"source"},
	)
	m.recommendationLatency = auto.NewHistogram(
		m.histogramOpts("recommendation_latency_milliseconds", "Latency of the recommendation pipeline in milliseconds", m.histogramBuckets),
	)
	m.recommendationErrors = auto.NewCounterVec(
		m.counterOpts("recommendation_errors_total", "Total number of rejected recommendation requests by reason"),
		[]string{"reason"},
	)
	m.fallbackUsed = auto.NewCounter(
		m.counterOpts("fallback_total", "Total number of requests answered from the built-in fallback list"),
	)
	m.summaries = auto.NewCounter(
		m.counterOpts("profile_summaries_total", "Total number of profile summaries computed"),
	)
	m.reports = auto.NewCounterVec(
		m.counterOpts("reports_total", "Total number of generated reports by format"),
		[]string{"format"},
	)
	m.catalogueSize = auto.NewGauge(
		m.gaugeOpts("catalogue_size", "Number of sports in the loaded catalogue"),
	)

	m.llmRequests = auto.NewCounterVec(
		m.counterOpts("llm_requests_total", "Total number of refinement calls by provider and outcome"),
		[]string{"provider", "outcome"},
	)
	m.llmLatency = auto.NewHistogramVec(
		m.histogramOpts("llm_latency_milliseconds", "Refinement call latency in milliseconds", m.histogramBuckets),
		[]string{"provider"},
	)

	m.cacheHits = auto.NewCounterVec(
		m.counterOpts("cache_hits_total", "Total number of memoized recommendation hits"),
		[]string{"backend"},
	)
	m.cacheMisses = auto.NewCounterVec(
		m.counterOpts("cache_misses_total", "Total number of memoized recommendation misses"),
		[]string{"backend"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// RecordRecommendation counts a served list and its pipeline latency.
func RecordRecommendation(source string, latencyMs float64) {
	globalManager.recommendations.WithLabelValues(source).Inc()
	globalManager.recommendationLatency.Observe(latencyMs)
}

// RecordRecommendationError counts a rejected request.
func RecordRecommendationError(reason string) {
	globalManager.recommendationErrors.WithLabelValues(reason).Inc()
}

// RecordFallback counts a request answered from the fallback list.
func RecordFallback() {
	globalManager.fallbackUsed.Inc()
}

// RecordSummary counts a computed profile summary.
func RecordSummary() {
	globalManager.summaries.Inc()
}

// RecordReport counts a generated report.
func RecordReport(format string) {
	globalManager.reports.WithLabelValues(format).Inc()
}

// UpdateCatalogueSize sets the catalogue size gauge.
func UpdateCatalogueSize(n int) {
	globalManager.catalogueSize.Set(float64(n))
}

// RecordLLMRequest counts a refinement call; outcome is "ok", "error" or "timeout".
func RecordLLMRequest(provider, outcome string, latencyMs float64) {
	globalManager.llmRequests.WithLabelValues(provider, outcome).Inc()
	globalManager.llmLatency.WithLabelValues(provider).Observe(latencyMs)
}

// RecordCacheHit counts a memoized hit.
func RecordCacheHit(backend string) {
	globalManager.cacheHits.WithLabelValues(backend).Inc()
}

// RecordCacheMiss counts a memoized miss.
func RecordCacheMiss(backend string) {
	globalManager.cacheMisses.WithLabelValues(backend).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
