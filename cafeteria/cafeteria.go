// Package cafeteria prepares hot dogs asynchronously.
//
// The Cafeteria accepts orders from any goroutine. Each order gets a unique,
// monotonically increasing ID and a fresh bread and sausage; a per-order
// cooking session then bakes and fries them concurrently on the shared gas
// cooker, assembles the hot dog, and invokes the order's completion handler
// exactly once with either the finished product or the first failure
// encountered.
//
// Example usage:
//
//	c := cafeteria.NewCafeteria(cooker.NewGasCooker(8))
//	c.OrderHotDog(func(hd *cafeteria.HotDog, err error) {
//	    if err != nil {
//	        log.Printf("order failed: %v", err)
//	        return
//	    }
//	    log.Printf("hot dog #%d ready", hd.ID())
//	})
package cafeteria

import (
	"log/slog"
	"sync"
	"time"

	"github.com/KavunVP/cafeteria/cooker"
	"github.com/KavunVP/cafeteria/ingredients"
	"github.com/KavunVP/cafeteria/journal"
	"github.com/KavunVP/cafeteria/logging"
	"github.com/KavunVP/cafeteria/metrics"
)

// Handler receives an order's single outcome: the finished hot dog, or the
// first failure encountered while preparing it. Invoked exactly once per
// order, asynchronously, from the order's session goroutine.
type Handler func(hotDog *HotDog, err error)

// Cafeteria is the order intake coordinator.
type Cafeteria struct {
	logger    *slog.Logger
	gc        *cooker.GasCooker
	store     *ingredients.Store
	journal   journal.Store
	kitchen   *metrics.Kitchen
	collector *logging.OrderLogCollector

	breadTime   time.Duration
	sausageTime time.Duration

	// mu serializes order-ID assignment and store access (the store is not
	// thread-safe) and guards the running stats.
	mu          sync.Mutex
	nextOrderID int
	placed      int
	succeeded   int
	failed      int
}

// Option configures a Cafeteria.
type Option func(*Cafeteria)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cafeteria) {
		c.logger = logger.With("component", "cafeteria")
	}
}

// WithCookDurations overrides the minimum cook durations.
func WithCookDurations(bread, sausage time.Duration) Option {
	return func(c *Cafeteria) {
		c.breadTime = bread
		c.sausageTime = sausage
	}
}

// WithJournal records every completed order in the given store.
func WithJournal(store journal.Store) Option {
	return func(c *Cafeteria) {
		c.journal = store
	}
}

// WithMetrics publishes order and burner metrics to the given set.
func WithMetrics(kitchen *metrics.Kitchen) Option {
	return func(c *Cafeteria) {
		c.kitchen = kitchen
	}
}

// WithOrderLogCollector captures each order's log stream, keyed by order ID,
// so it can be served alongside the order history.
func WithOrderLogCollector(collector *logging.OrderLogCollector) Option {
	return func(c *Cafeteria) {
		c.collector = collector
	}
}

// NewCafeteria creates a cafeteria cooking on the given gas cooker.
func NewCafeteria(gc *cooker.GasCooker, opts ...Option) *Cafeteria {
	c := &Cafeteria{
		logger:      slog.Default().With("component", "cafeteria"),
		gc:          gc,
		store:       ingredients.NewStore(),
		breadTime:   MinBreadCookDuration,
		sausageTime: MinSausageCookDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OrderHotDog places an order. Callable from any goroutine; returns
// immediately. The handler fires later, exactly once, with the outcome.
func (c *Cafeteria) OrderHotDog(handler Handler) {
	c.mu.Lock()
	c.nextOrderID++
	orderID := c.nextOrderID
	bread := c.store.GetBread()
	sausage := c.store.GetSausage()
	c.placed++
	c.mu.Unlock()

	placedAt := time.Now()
	if c.kitchen != nil {
		c.kitchen.OrdersPlaced.Inc()
		c.kitchen.OrdersInFlight.Set(float64(c.inFlight()))
	}
	c.logger.Debug("order placed", "order_id", orderID)

	sessionLogger := c.logger
	if c.collector != nil {
		handler := logging.NewCapturingHandler(c.logger.Handler(), c.collector, orderID)
		sessionLogger = slog.New(handler)
	}

	session := newCookingSession(
		orderID,
		breadActor{gc: c.gc, bread: bread},
		sausageActor{gc: c.gc, sausage: sausage},
		c.breadTime, c.sausageTime,
		func() (*HotDog, error) { return NewHotDog(orderID, sausage, bread) },
		func(hd *HotDog, err error) {
			c.recordOutcome(orderID, placedAt, hd, err)
			handler(hd, err)
		},
		sessionLogger,
	)
	session.Start()
}

// Stats returns a snapshot of the kitchen.
func (c *Cafeteria) Stats() metrics.KitchenStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return metrics.KitchenStats{
		OrdersPlaced:    c.placed,
		OrdersSucceeded: c.succeeded,
		OrdersFailed:    c.failed,
		OrdersInFlight:  c.placed - c.succeeded - c.failed,
		BurnersInUse:    c.gc.BurnersInUse(),
		BurnerCount:     c.gc.BurnerCount(),
	}
}

func (c *Cafeteria) inFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.placed - c.succeeded - c.failed
}

// recordOutcome updates stats, metrics, and the journal for one completed
// order. Runs on the order's session goroutine, before the caller's handler.
func (c *Cafeteria) recordOutcome(orderID int, placedAt time.Time, hd *HotDog, err error) {
	finishedAt := time.Now()

	c.mu.Lock()
	if err != nil {
		c.failed++
	} else {
		c.succeeded++
	}
	c.mu.Unlock()

	if c.kitchen != nil {
		result := metrics.ResultOK
		if err != nil {
			result = metrics.ResultFailed
		}
		c.kitchen.OrdersCompleted.With(map[string]string{"result": result}).Inc()
		c.kitchen.OrdersInFlight.Set(float64(c.inFlight()))
		c.kitchen.BurnersInUse.Set(float64(c.gc.BurnersInUse()))
		c.kitchen.LastOrderSeconds.Set(finishedAt.Sub(placedAt).Seconds())
	}

	if c.journal == nil {
		return
	}
	entry := journal.Entry{
		OrderID:    orderID,
		PlacedAt:   placedAt,
		FinishedAt: finishedAt,
		Success:    err == nil,
	}
	if err != nil {
		entry.Error = err.Error()
	} else {
		entry.SausageID = hd.Sausage().ID()
		entry.BreadID = hd.Bread().ID()
	}
	if jerr := c.journal.Append(entry); jerr != nil {
		c.logger.Error("failed to record order in journal", "order_id", orderID, "error", jerr)
	}
}

// breadActor and sausageActor adapt the concrete ingredients to the
// session's actor contract.
type breadActor struct {
	gc    *cooker.GasCooker
	bread *ingredients.Bread
}

func (a breadActor) Start(onStarted func()) error { return a.bread.StartBake(a.gc, onStarted) }
func (a breadActor) Stop() error                  { return a.bread.StopBaking() }

type sausageActor struct {
	gc      *cooker.GasCooker
	sausage *ingredients.Sausage
}

func (a sausageActor) Start(onStarted func()) error { return a.sausage.StartFry(a.gc, onStarted) }
func (a sausageActor) Stop() error                  { return a.sausage.StopFry() }
