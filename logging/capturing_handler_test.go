package logging

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCapture(orderID int) (*slog.Logger, *OrderLogCollector) {
	collector := NewOrderLogCollector()
	underlying := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(NewCapturingHandler(underlying, collector, orderID)), collector
}

func TestCapturingHandler_CapturesRecords(t *testing.T) {
	logger, collector := newTestCapture(12)

	logger.Info("order placed", "order_id", 12)
	logger.Warn("cleanup stop failed", "ingredient", "bread", "error", errors.New("stuck burner"))

	logs := collector.Logs(12)
	require.Len(t, logs, 2)

	assert.Equal(t, "order placed", logs[0].Message)
	assert.Equal(t, "INFO", logs[0].Level)
	assert.EqualValues(t, 12, logs[0].Attributes["order_id"])

	assert.Equal(t, "cleanup stop failed", logs[1].Message)
	assert.Equal(t, "WARN", logs[1].Level)
	assert.Equal(t, "bread", logs[1].Attributes["ingredient"])
	assert.Equal(t, "stuck burner", logs[1].Attributes["error"], "errors are stored as strings")
}

func TestCapturingHandler_CapturesBelowUnderlyingLevel(t *testing.T) {
	// Underlying handler filters debug; the capture must not.
	logger, collector := newTestCapture(3)

	logger.Debug("ingredient started", "ingredient", "sausage")

	logs := collector.Logs(3)
	require.Len(t, logs, 1)
	assert.Equal(t, "DEBUG", logs[0].Level)
}

func TestCapturingHandler_WithPreservesCapture(t *testing.T) {
	logger, collector := newTestCapture(5)

	logger.With("component", "session").Info("order ready")

	logs := collector.Logs(5)
	require.Len(t, logs, 1)
	assert.Equal(t, "session", logs[0].Attributes["component"])
}

func TestOrderLogCollector_IsolatesOrders(t *testing.T) {
	collector := NewOrderLogCollector()
	collector.Add(1, LogEntry{Message: "one"})
	collector.Add(2, LogEntry{Message: "two"})

	require.Len(t, collector.Logs(1), 1)
	require.Len(t, collector.Logs(2), 1)
	assert.Nil(t, collector.Logs(3))

	collector.Clear()
	assert.Nil(t, collector.Logs(1))
}

func TestOrderLogCollector_ConcurrentAdds(t *testing.T) {
	collector := NewOrderLogCollector()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			collector.Add(id%4, LogEntry{Message: "m"})
		}(i)
	}
	wg.Wait()

	total := 0
	for id := 0; id < 4; id++ {
		total += len(collector.Logs(id))
	}
	assert.Equal(t, 20, total)
}
