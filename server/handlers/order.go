package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KavunVP/cafeteria/cafeteria"
)

// OrderResponse is returned when an order completes.
type OrderResponse struct {
	OrderID   int    `json:"order_id"`
	BreadID   int    `json:"bread_id"`
	SausageID int    `json:"sausage_id"`
	CookTime  string `json:"cook_time"`
}

// orderOutcome carries one order's result from the session goroutine to the
// waiting request handler.
type orderOutcome struct {
	hotDog *cafeteria.HotDog
	err    error
}

// OrderHandler places an order and waits for its outcome.
type OrderHandler struct {
	logger  *slog.Logger
	placer  OrderPlacer
	timeout time.Duration
}

// NewOrderHandler creates a new OrderHandler. The timeout bounds how long a
// request waits for the kitchen; the order itself keeps cooking either way.
func NewOrderHandler(logger *slog.Logger, placer OrderPlacer, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		logger:  logger,
		placer:  placer,
		timeout: timeout,
	}
}

// ServeHTTP implements http.Handler.
func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	placedAt := time.Now()

	// Buffered so the completion handler never blocks if this request has
	// already given up.
	done := make(chan orderOutcome, 1)
	h.placer.OrderHotDog(func(hd *cafeteria.HotDog, err error) {
		done <- orderOutcome{hotDog: hd, err: err}
	})

	select {
	case outcome := <-done:
		if outcome.err != nil {
			h.logger.Warn("order failed", "error", outcome.err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: outcome.err.Error()})
			return
		}
		hd := outcome.hotDog
		writeJSON(w, http.StatusOK, OrderResponse{
			OrderID:   hd.ID(),
			BreadID:   hd.Bread().ID(),
			SausageID: hd.Sausage().ID(),
			CookTime:  time.Since(placedAt).Round(time.Millisecond).String(),
		})
	case <-time.After(h.timeout):
		writeJSON(w, http.StatusGatewayTimeout, ErrorResponse{Error: "order timed out"})
	case <-r.Context().Done():
		// Client went away; nothing to write.
	}
}
