package metrics

import "github.com/prometheus/client_golang/prometheus"

// Result label values for the orders counter.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Kitchen bundles the cafeteria's metric set.
type Kitchen struct {
	// OrdersPlaced counts orders accepted by the intake path.
	OrdersPlaced Counter
	// OrdersCompleted counts delivered outcomes by result ("ok"/"failed").
	OrdersCompleted CounterVec
	// OrdersInFlight tracks orders placed but not yet completed.
	OrdersInFlight Gauge
	// BurnersInUse tracks burners currently held on the gas cooker.
	BurnersInUse Gauge
	// LastOrderSeconds records the duration of the most recent order.
	LastOrderSeconds Gauge
}

// NewKitchen creates and registers the kitchen metric set on the registry.
func NewKitchen(r Registry) (*Kitchen, error) {
	placed, err := r.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders accepted by the cafeteria.",
	})
	if err != nil {
		return nil, err
	}

	completed, err := r.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Completed orders by result.",
	}, []string{"result"})
	if err != nil {
		return nil, err
	}

	inFlight, err := r.NewGauge(prometheus.GaugeOpts{
		Name: "orders_in_flight",
		Help: "Orders placed but not yet completed.",
	})
	if err != nil {
		return nil, err
	}

	burners, err := r.NewGauge(prometheus.GaugeOpts{
		Name: "burners_in_use",
		Help: "Gas cooker burners currently held.",
	})
	if err != nil {
		return nil, err
	}

	lastOrder, err := r.NewGauge(prometheus.GaugeOpts{
		Name: "last_order_duration_seconds",
		Help: "Duration of the most recently completed order.",
	})
	if err != nil {
		return nil, err
	}

	return &Kitchen{
		OrdersPlaced:     placed,
		OrdersCompleted:  completed,
		OrdersInFlight:   inFlight,
		BurnersInUse:     burners,
		LastOrderSeconds: lastOrder,
	}, nil
}
