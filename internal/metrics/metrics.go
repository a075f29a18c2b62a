package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private Prometheus registry so tests can create as many
// instances as they like without duplicate-registration panics.
type Recorder struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	jobsQueued    *prometheus.CounterVec
	jobsStarted   *prometheus.CounterVec
	jobsCompleted *prometheus.CounterVec
	jobsFailed    *prometheus.CounterVec
	activeWorkers prometheus.Gauge
	queueDepth    prometheus.Gauge
	jobDuration   *prometheus.HistogramVec
}

func CreateRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Recorder{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		jobsQueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "downloader_jobs_queued_total",
			Help: "Queued download entries.",
		}, []string{"preset"}),
		jobsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "downloader_jobs_started_total",
			Help: "Started download entries.",
		}, []string{"preset"}),
		jobsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "downloader_jobs_completed_total",
			Help: "Completed download entries.",
		}, []string{"preset"}),
		jobsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "downloader_jobs_failed_total",
			Help: "Failed download entries.",
		}, []string{"reason"}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "downloader_active_jobs",
			Help: "Download entries currently running in the worker pool.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "downloader_queue_depth",
			Help: "Download entries waiting in the queue.",
		}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "downloader_job_duration_seconds",
			Help:    "Download entry processing duration.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"preset", "status"}),
	}

	registry.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.jobsQueued,
		m.jobsStarted,
		m.jobsCompleted,
		m.jobsFailed,
		m.activeWorkers,
		m.queueDepth,
		m.jobDuration,
	)

	return m
}

func (m *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Recorder) ObserveHTTP(method, route, status string, seconds float64) {
	m.requestTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Recorder) MarkQueued(preset string) {
	m.jobsQueued.WithLabelValues(preset).Inc()
}

func (m *Recorder) MarkStarted(preset string) {
	m.jobsStarted.WithLabelValues(preset).Inc()
}

func (m *Recorder) MarkCompleted(preset string) {
	m.jobsCompleted.WithLabelValues(preset).Inc()
}

func (m *Recorder) MarkFailed(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	m.jobsFailed.WithLabelValues(reason).Inc()
}

func (m *Recorder) SetActiveWorkers(value int) {
	m.activeWorkers.Set(float64(value))
}

func (m *Recorder) SetQueueDepth(value int) {
	m.queueDepth.Set(float64(value))
}

func (m *Recorder) ObserveJobDuration(preset, status string, seconds float64) {
	m.jobDuration.WithLabelValues(preset, status).Observe(seconds)
}

// FailureReason maps an adapter error message to a coarse label so the
// failed-jobs counter keeps a bounded cardinality.
func FailureReason(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "timed out") || strings.Contains(lowered, "timeout"):
		return "timeout"
	case strings.Contains(lowered, "403") || strings.Contains(lowered, "forbidden"):
		return "forbidden"
	case strings.Contains(lowered, "network"):
		return "network"
	case strings.Contains(lowered, "not available"):
		return "unavailable"
	default:
		return "other"
	}
}
