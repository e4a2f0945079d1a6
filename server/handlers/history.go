package handlers

import (
	"net/http"
	"strconv"
)

// HistoryHandler handles requests for the completed order history.
type HistoryHandler struct {
	provider HistoryProvider
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(provider HistoryProvider) *HistoryHandler {
	return &HistoryHandler{
		provider: provider,
	}
}

// ServeHTTP implements http.Handler.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.Recent())
}

// OrderLogsHandler handles requests for logs of a specific order.
type OrderLogsHandler struct {
	provider OrderLogProvider
}

// NewOrderLogsHandler creates a new OrderLogsHandler.
func NewOrderLogsHandler(provider OrderLogProvider) *OrderLogsHandler {
	return &OrderLogsHandler{
		provider: provider,
	}
}

// ServeHTTP implements http.Handler.
func (h *OrderLogsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing order id"})
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
		return
	}

	logs := h.provider.Logs(id)
	if logs == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no logs for order"})
		return
	}

	writeJSON(w, http.StatusOK, logs)
}
