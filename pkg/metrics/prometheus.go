package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for directory requests.
const (
	OutcomeSuccess   = "success"
	OutcomeService   = "service_error"
	OutcomeTransport = "transport_error"
)

// Manager holds the service registry and its collectors.
type Manager struct {
	Registry          *prometheus.Registry
	DirectoryRequests *prometheus.CounterVec
	DirectoryLatency  *prometheus.HistogramVec
}

// NewManager creates a registry with runtime collectors and the directory client metrics.
func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_requests_total",
		Help:      "Total number of requests to the directory service by operation and outcome.",
	}, []string{"operation", "outcome"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "directory_request_duration_seconds",
		Help:      "Latency of requests to the directory service by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	registry.MustRegister(
		requests,
		latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Manager{
		Registry:          registry,
		DirectoryRequests: requests,
		DirectoryLatency:  latency,
	}
}

// ObserveDirectory records one directory request. Safe on a nil Manager.
func (m *Manager) ObserveDirectory(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DirectoryRequests.WithLabelValues(operation, outcome).Inc()
	m.DirectoryLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
