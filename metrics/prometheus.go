// Package metrics exposes analyzer and HTTP metrics to Prometheus
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Analysis outcomes used as the status label
const (
	StatusSuccess = "success"
	StatusCached  = "cached"
	StatusInvalid = "invalid"
)

// Recorder is what the analyzer reports to
type Recorder interface {
	RecordAnalysis(status, grade string, duration float64)
	RecordRuleError(ruleID string)
	RecordCache(hit bool)
}

// Collector adds the HTTP side used by the middleware
type Collector interface {
	Recorder
	RecordRequest(method, path string, statusCode int, duration float64)
	IncRequestsInFlight()
	DecRequestsInFlight()
	GetCollectors() []prometheus.Collector
}

// PrometheusCollector implements metrics collection using Prometheus
type PrometheusCollector struct {
	serviceName string

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Analyzer metrics
	analysisTotal    *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	gradesTotal      *prometheus.CounterVec
	ruleErrorsTotal  *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

// NewPrometheusCollector creates a new Prometheus metrics collector
func NewPrometheusCollector(serviceName string) *PrometheusCollector {
	constLabels := prometheus.Labels{"service": serviceName}

	return &PrometheusCollector{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being processed",
				ConstLabels: constLabels,
			},
		),

		analysisTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "content_analysis_total",
				Help:        "Total number of content analyses",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),

		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "content_analysis_duration_seconds",
				Help:        "Content analysis duration in seconds",
				ConstLabels: constLabels,
				Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"status"},
		),

		gradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "content_analysis_grades_total",
				Help:        "Analyses by resulting grade",
				ConstLabels: constLabels,
			},
			[]string{"grade"},
		),

		ruleErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "rule_errors_total",
				Help:        "Rule checks that failed and were excluded from the score",
				ConstLabels: constLabels,
			},
			[]string{"rule"},
		),

		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "analysis_cache_lookups_total",
				Help:        "Analysis cache lookups by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}
}

// GetCollectors returns all Prometheus collectors for registration
func (p *PrometheusCollector) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.httpRequestsTotal,
		p.httpRequestDuration,
		p.httpRequestsInFlight,
		p.analysisTotal,
		p.analysisDuration,
		p.gradesTotal,
		p.ruleErrorsTotal,
		p.cacheLookups,
	}
}

// RecordRequest records HTTP request metrics
func (p *PrometheusCollector) RecordRequest(method, path string, statusCode int, duration float64) {
	status := statusCodeToString(statusCode)

	p.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	p.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
}

// RecordAnalysis records one analysis; grade is empty for rejected input
func (p *PrometheusCollector) RecordAnalysis(status, grade string, duration float64) {
	p.analysisTotal.WithLabelValues(status).Inc()
	p.analysisDuration.WithLabelValues(status).Observe(duration)
	if grade != "" {
		p.gradesTotal.WithLabelValues(grade).Inc()
	}
}

// RecordRuleError counts a rule check excluded from a run
func (p *PrometheusCollector) RecordRuleError(ruleID string) {
	p.ruleErrorsTotal.WithLabelValues(ruleID).Inc()
}

// RecordCache counts an analysis cache lookup
func (p *PrometheusCollector) RecordCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

// IncRequestsInFlight increments the in-flight requests gauge
func (p *PrometheusCollector) IncRequestsInFlight() {
	p.httpRequestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight requests gauge
func (p *PrometheusCollector) DecRequestsInFlight() {
	p.httpRequestsInFlight.Dec()
}

// statusCodeToString converts HTTP status code to string category
func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordAnalysis(string, string, float64) {}
func (nopRecorder) RecordRuleError(string)                 {}
func (nopRecorder) RecordCache(bool)                       {}

// Nop returns a Recorder that records nothing
func Nop() Recorder {
	return nopRecorder{}
}

var _ Collector = (*PrometheusCollector)(nil)
