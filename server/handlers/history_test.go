package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KavunVP/cafeteria/journal"
	"github.com/KavunVP/cafeteria/logging"
)

type stubHistory struct {
	entries []journal.Entry
}

func (s *stubHistory) Recent() []journal.Entry { return s.entries }

func TestHistoryHandler(t *testing.T) {
	now := time.Now()
	provider := &stubHistory{entries: []journal.Entry{
		{OrderID: 2, PlacedAt: now, FinishedAt: now.Add(2 * time.Second), Success: true, BreadID: 3, SausageID: 4},
		{OrderID: 1, PlacedAt: now, FinishedAt: now.Add(time.Second), Success: false, Error: "burner jammed"},
	}}

	h := NewHistoryHandler(provider)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []journal.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].OrderID)
	assert.Equal(t, "burner jammed", entries[1].Error)
}

func TestOrderLogsHandler(t *testing.T) {
	collector := logging.NewOrderLogCollector()
	collector.Add(7, logging.LogEntry{Message: "order ready", Level: "INFO"})

	h := NewOrderLogsHandler(collector)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "missing id", target: "/orders/logs", wantStatus: http.StatusBadRequest},
		{name: "bad id", target: "/orders/logs?id=abc", wantStatus: http.StatusBadRequest},
		{name: "unknown order", target: "/orders/logs?id=99", wantStatus: http.StatusNotFound},
		{name: "known order", target: "/orders/logs?id=7", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("log payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/logs?id=7", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		var logs []logging.LogEntry
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&logs))
		require.Len(t, logs, 1)
		assert.Equal(t, "order ready", logs[0].Message)
	})
}
