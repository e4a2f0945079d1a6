// Package server provides an HTTP server for the cafeteria.
//
// The server exposes a REST API to place hot dog orders and observe the
// kitchen.
//
// # Endpoints
//
//   - GET /health - Simple health check, returns "ok"
//   - POST /orders - Places an order and waits for the finished hot dog
//   - GET /orders - Returns the completed order history
//   - GET /orders/logs?id=N - Returns the log stream of one order
//   - GET /api/status - Kitchen snapshot (orders, burners)
//   - GET /metrics - Prometheus scrape endpoint (when metrics are wired)
//
// # Example
//
//	srv, err := server.New(caf, server.WithListenAddr(":8080"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"

	"github.com/KavunVP/cafeteria/cafeteria"
	"github.com/KavunVP/cafeteria/journal"
	"github.com/KavunVP/cafeteria/logging"
	"github.com/KavunVP/cafeteria/server/handlers"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultListenAddr      = ":8080"
	defaultOrderTimeout    = 30 * time.Second
)

// Server is the HTTP server for the cafeteria API.
type Server struct {
	addr         string
	logger       *slog.Logger
	caf          *cafeteria.Cafeteria
	history      journal.Store
	collector    *logging.OrderLogCollector
	metrics      http.Handler
	orderTimeout time.Duration

	tlsCert string
	tlsKey  string

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server) error

// WithListenAddr configures the address the server listens on.
// Default is ":8080".
func WithListenAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger.With("component", "server")
		return nil
	}
}

// WithOrderTimeout bounds how long POST /orders waits for the kitchen.
func WithOrderTimeout(d time.Duration) Option {
	return func(s *Server) error {
		s.orderTimeout = d
		return nil
	}
}

// WithHistory serves the completed order history from the given journal.
func WithHistory(store journal.Store) Option {
	return func(s *Server) error {
		s.history = store
		return nil
	}
}

// WithOrderLogs serves per-order log streams from the given collector.
func WithOrderLogs(collector *logging.OrderLogCollector) Option {
	return func(s *Server) error {
		s.collector = collector
		return nil
	}
}

// WithMetricsHandler serves the given handler on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) error {
		s.metrics = h
		return nil
	}
}

// WithTLS serves HTTPS using the given certificate and key files. The
// certificate is reloaded when the files change on disk.
func WithTLS(certFile, keyFile string) Option {
	return func(s *Server) error {
		s.tlsCert = certFile
		s.tlsKey = keyFile
		return nil
	}
}

// New creates a new Server fronting the given cafeteria.
func New(caf *cafeteria.Cafeteria, opts ...Option) (*Server, error) {
	s := &Server{
		addr:         defaultListenAddr,
		logger:       slog.Default().With("component", "server"),
		caf:          caf,
		orderTimeout: defaultOrderTimeout,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs a graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:        s.addr,
		Handler:     mux,
		ReadTimeout: defaultReadTimeout,
		// Order requests block until the hot dog is ready, so the write
		// timeout must outlast the order timeout.
		WriteTimeout: s.orderTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		var err error
		if s.tlsCert != "" {
			err = s.listenAndServeTLS()
		} else {
			s.logger.Info("starting server", "addr", s.addr)
			err = s.httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) listenAndServeTLS() error {
	loader, err := NewCertLoader(s.tlsCert, s.tlsKey, s.logger)
	if err != nil {
		return err
	}
	s.httpServer.TLSConfig = &tls.Config{
		GetCertificate: loader.GetCertificate,
	}
	s.logger.Info("starting server with TLS", "addr", s.addr)
	return s.httpServer.ListenAndServeTLS("", "")
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	orderHandler := handlers.NewOrderHandler(s.logger, s.caf, s.orderTimeout)
	statusHandler := handlers.NewAPIStatusHandler(s.logger, s.caf)

	mux.HandleFunc("GET /health", handlers.HandleHealth)
	mux.Handle("POST /orders", orderHandler)
	mux.Handle("GET /api/status", statusHandler)

	if s.history != nil {
		mux.Handle("GET /orders", handlers.NewHistoryHandler(s.history))
	}
	if s.collector != nil {
		mux.Handle("GET /orders/logs", handlers.NewOrderLogsHandler(s.collector))
	}
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
}
