package logging

import (
	"sync"
	"time"
)

// LogEntry is a single captured log record with structured data.
type LogEntry struct {
	Time       time.Time              `json:"time"`
	Level      string                 `json:"level"` // "DEBUG", "INFO", "WARN", "ERROR"
	Message    string                 `json:"message"`
	Attributes map[string]interface{} `json:"attributes"`
}

// OrderLogCollector stores the log stream of each order, keyed by order ID.
// Safe for concurrent use: entries arrive from per-order session goroutines.
type OrderLogCollector struct {
	mu   sync.RWMutex
	logs map[int][]LogEntry
}

// NewOrderLogCollector creates an empty collector.
func NewOrderLogCollector() *OrderLogCollector {
	return &OrderLogCollector{
		logs: make(map[int][]LogEntry),
	}
}

// Add appends a log entry to the given order's stream.
func (c *OrderLogCollector) Add(orderID int, entry LogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs[orderID] = append(c.logs[orderID], entry)
}

// Logs returns a copy of the given order's log stream.
func (c *OrderLogCollector) Logs(orderID int) []LogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	logs, ok := c.logs[orderID]
	if !ok {
		return nil
	}
	result := make([]LogEntry, len(logs))
	copy(result, logs)
	return result
}

// Clear drops all captured logs.
func (c *OrderLogCollector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = make(map[int][]LogEntry)
}
