package service

import (
	"context"
	"time"

	"vitta/internal/alerts"
	"vitta/internal/logger"
	"vitta/internal/metrics"
)

// AlertMonitor recomputes alerts on a ticker, publishes the counts as
// gauges and logs whenever they change.
type AlertMonitor struct {
	alerts Alerts
	log    *logger.Logger

	last    alerts.Summary
	hasLast bool
}

func NewAlertMonitor(a Alerts, log *logger.Logger) *AlertMonitor {
	if log == nil {
		log = logger.Nop()
	}
	return &AlertMonitor{alerts: a, log: log}
}

// Run ticks at the given interval until ctx is canceled.
// The first computation happens immediately.
func (m *AlertMonitor) Run(ctx context.Context, tick time.Duration) {
	m.refresh(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.refresh(ctx)
		}
	}
}

// refresh runs one computation and reports whether it succeeded.
func (m *AlertMonitor) refresh(ctx context.Context) bool {
	sum, err := m.alerts.Summary(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		metrics.AlertComputations.WithLabelValues("failed").Inc()
		m.log.Errorw("alert computation failed", "error", err)
		return false
	}
	metrics.AlertComputations.WithLabelValues("success").Inc()

	metrics.MaintenanceAlerts.WithLabelValues(alerts.Overdue.String()).Set(float64(sum.Overdue))
	metrics.MaintenanceAlerts.WithLabelValues(alerts.Urgent.String()).Set(float64(sum.Urgent))
	metrics.MaintenanceAlerts.WithLabelValues(alerts.Upcoming.String()).Set(float64(sum.Upcoming))

	if !m.hasLast || sum != m.last {
		m.log.Infow("alerts changed",
			"overdue", sum.Overdue,
			"urgent", sum.Urgent,
			"upcoming", sum.Upcoming,
			"total", sum.Total,
		)
	}
	m.last, m.hasLast = sum, true
	return true
}
