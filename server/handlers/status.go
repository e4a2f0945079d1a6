package handlers

import (
	"log/slog"
	"net/http"
)

// APIStatusHandler serves the consolidated kitchen status.
type APIStatusHandler struct {
	logger *slog.Logger
	source StatsSource
}

// NewAPIStatusHandler creates a new APIStatusHandler.
func NewAPIStatusHandler(logger *slog.Logger, source StatsSource) *APIStatusHandler {
	return &APIStatusHandler{
		logger: logger,
		source: source,
	}
}

// ServeHTTP implements http.Handler.
func (h *APIStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.source.Stats())
}
