// Package journal records completed orders for the cafeteria's API and
// diagnostics. It keeps a bounded history of outcomes; it is not a
// persistence layer and orders are never replayed from it.
package journal

import "time"

// Entry describes one completed order, success or failure.
type Entry struct {
	OrderID    int       `json:"order_id"`
	PlacedAt   time.Time `json:"placed_at"`
	FinishedAt time.Time `json:"finished_at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	SausageID  int       `json:"sausage_id,omitempty"`
	BreadID    int       `json:"bread_id,omitempty"`
}

// Duration returns how long the order took from intake to outcome.
func (e Entry) Duration() time.Duration {
	return e.FinishedAt.Sub(e.PlacedAt)
}

// Store records completed orders and serves recent history.
// Implementations must be safe for concurrent use: entries arrive from
// per-order session goroutines.
type Store interface {
	// Append records a completed order.
	Append(entry Entry) error

	// Recent returns completed orders, most recent first.
	Recent() []Entry
}
