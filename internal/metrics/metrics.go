package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitta_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vitta_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// Alert metrics, refreshed by the alert monitor
	MaintenanceAlerts = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vitta_maintenance_alerts",
			Help: "Current number of maintenance alerts by urgency",
		},
		[]string{"urgency"},
	)

	AlertComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitta_alert_computations_total",
			Help: "Total number of alert computations",
		},
		[]string{"status"}, // status: success, failed
	)

	// Auth
	SignInAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitta_sign_in_attempts_total",
			Help: "Total number of sign-in attempts",
		},
		[]string{"result"}, // result: success, failed, rate_limited
	)
)
