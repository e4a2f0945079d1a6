// Package metrics provides Prometheus-compatible metrics for the cafeteria.
//
// Two modes are supported:
//   - Scrape mode: metrics are registered with a Prometheus registry and
//     exposed on the HTTP server's /metrics endpoint.
//   - Push mode: metrics are pushed to a VictoriaMetrics/Prometheus remote
//     write endpoint, used by the scheduled kitchen reporter.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Gauge is a metric representing a single value that can go up and down.
type Gauge interface {
	// Set sets the Gauge to the given value.
	Set(float64)
}

// Counter is a monotonically increasing metric.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()
}

// CounterVec is a Counter with labels.
type CounterVec interface {
	// With returns the Counter for the given labels.
	With(prometheus.Labels) Counter
}

// Registry creates and registers metrics.
// Implementations handle the differences between push and scrape modes.
type Registry interface {
	// NewGauge creates and registers a new Gauge.
	NewGauge(opts prometheus.GaugeOpts) (Gauge, error)

	// NewCounter creates and registers a new Counter.
	NewCounter(opts prometheus.CounterOpts) (Counter, error)

	// NewCounterVec creates and registers a new CounterVec.
	NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error)
}
