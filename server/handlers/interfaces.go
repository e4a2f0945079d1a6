// Package handlers provides HTTP handlers for the cafeteria server.
//
// Each handler is in its own file and implements http.Handler.
// Handlers use interfaces to access server dependencies, avoiding
// circular imports.
package handlers

import (
	"github.com/KavunVP/cafeteria/cafeteria"
	"github.com/KavunVP/cafeteria/journal"
	"github.com/KavunVP/cafeteria/logging"
	"github.com/KavunVP/cafeteria/metrics"
)

// OrderPlacer accepts hot dog orders.
type OrderPlacer interface {
	OrderHotDog(handler cafeteria.Handler)
}

// HistoryProvider provides access to completed orders, most recent first.
type HistoryProvider interface {
	Recent() []journal.Entry
}

// StatsSource provides a snapshot of the kitchen.
type StatsSource interface {
	Stats() metrics.KitchenStats
}

// OrderLogProvider provides access to a single order's log stream.
type OrderLogProvider interface {
	Logs(orderID int) []logging.LogEntry
}
