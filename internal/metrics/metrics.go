package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the back office
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Calendar sync metrics
	SyncsTotal         prometheus.CounterVec
	SyncEventsImported prometheus.CounterVec
	SyncDuration       prometheus.HistogramVec
	BookingsRemoved    prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "backoffice_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Calendar sync metrics
		SyncsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_calendar_syncs_total",
				Help: "Total calendar feed syncs by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		SyncEventsImported: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_calendar_events_imported_total",
				Help: "Total bookings created from feed events by source",
			},
			[]string{"source"},
		),
		SyncDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_calendar_sync_duration_seconds",
				Help:    "Duration of calendar feed sync runs in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"source"},
		),
		BookingsRemoved: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_calendar_bookings_removed_total",
				Help: "Total imported bookings removed because their event left the feed",
			},
			[]string{"source"},
		),
	}
}
