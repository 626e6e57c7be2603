package api

import (
	"context"
	"log/slog"
	"net/http"
)

// HealthHandler reports liveness based on metadata store reachability
type HealthHandler struct {
	check func(ctx context.Context) error
}

// NewHealthHandler creates a new health handler. The check should execute
// a trivial query against the metadata store.
func NewHealthHandler(check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{check: check}
}

// Health returns 200 when the store is reachable, 503 otherwise
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.check(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
