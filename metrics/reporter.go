package metrics

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// KitchenStats is a point-in-time snapshot of the kitchen.
type KitchenStats struct {
	OrdersPlaced    int `json:"orders_placed"`
	OrdersSucceeded int `json:"orders_succeeded"`
	OrdersFailed    int `json:"orders_failed"`
	OrdersInFlight  int `json:"orders_in_flight"`
	BurnersInUse    int `json:"burners_in_use"`
	BurnerCount     int `json:"burner_count"`
}

// StatsSource provides kitchen snapshots; implemented by cafeteria.Cafeteria.
type StatsSource interface {
	Stats() KitchenStats
}

// Reporter pushes kitchen snapshots to a remote write endpoint.
// It implements cron.Runnable so it can be driven on a schedule.
type Reporter struct {
	source StatsSource
	logger *slog.Logger

	ordersPlaced   Gauge
	ordersFailed   Gauge
	ordersInFlight Gauge
	burnersInUse   Gauge
}

// NewReporter creates a Reporter pushing through the given registry.
func NewReporter(r Registry, source StatsSource, logger *slog.Logger) (*Reporter, error) {
	rep := &Reporter{source: source, logger: logger}

	for name, target := range map[string]*Gauge{
		"orders_placed_total": &rep.ordersPlaced,
		"orders_failed_total": &rep.ordersFailed,
		"orders_in_flight":    &rep.ordersInFlight,
		"burners_in_use":      &rep.burnersInUse,
	} {
		g, err := r.NewGauge(prometheus.GaugeOpts{Name: name})
		if err != nil {
			return nil, fmt.Errorf("creating gauge %q: %w", name, err)
		}
		*target = g
	}

	return rep, nil
}

// Run pushes one snapshot. It never returns an error: a lost sample is not
// worth failing the schedule over.
func (r *Reporter) Run() error {
	stats := r.source.Stats()

	r.ordersPlaced.Set(float64(stats.OrdersPlaced))
	r.ordersFailed.Set(float64(stats.OrdersFailed))
	r.ordersInFlight.Set(float64(stats.OrdersInFlight))
	r.burnersInUse.Set(float64(stats.BurnersInUse))

	r.logger.Debug("kitchen snapshot pushed",
		"orders_placed", stats.OrdersPlaced,
		"orders_failed", stats.OrdersFailed,
		"burners_in_use", stats.BurnersInUse,
	)
	return nil
}
