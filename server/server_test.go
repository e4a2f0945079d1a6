package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KavunVP/cafeteria/cafeteria"
	"github.com/KavunVP/cafeteria/cooker"
	"github.com/KavunVP/cafeteria/journal"
	"github.com/KavunVP/cafeteria/logging"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCafeteria() *cafeteria.Cafeteria {
	return cafeteria.NewCafeteria(cooker.NewGasCooker(2),
		cafeteria.WithLogger(testLogger()),
		cafeteria.WithCookDurations(2*time.Millisecond, 3*time.Millisecond),
	)
}

func TestServer_Routes(t *testing.T) {
	collector := logging.NewOrderLogCollector()
	collector.Add(1, logging.LogEntry{Message: "order placed"})

	srv, err := New(testCafeteria(),
		WithLogger(testLogger()),
		WithHistory(journal.NewMemoryStore(10)),
		WithOrderLogs(collector),
		WithMetricsHandler(http.NotFoundHandler()),
	)
	require.NoError(t, err)

	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/status", http.StatusOK},
		{http.MethodPost, "/orders", http.StatusOK},
		{http.MethodGet, "/orders", http.StatusOK},
		{http.MethodGet, "/orders/logs?id=1", http.StatusOK},
		{http.MethodGet, "/orders/logs", http.StatusBadRequest},
		{http.MethodDelete, "/orders", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_OptionalRoutesAbsent(t *testing.T) {
	// Without history or log collector the corresponding routes 404.
	srv, err := New(testCafeteria(), WithLogger(testLogger()))
	require.NoError(t, err)

	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	for _, target := range []string{"/orders/logs?id=1", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	srv, err := New(testCafeteria(),
		WithLogger(testLogger()),
		WithListenAddr("127.0.0.1:0"),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	// Let the listener come up, then shut down.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
