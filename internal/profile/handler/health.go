package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"drivedesk/pkg/httputil"
	"drivedesk/pkg/logger"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream,omitempty"`
}

// Pinger reports reachability of the bookings service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	upstream Pinger
	log      *logger.Logger
}

func NewHealthHandler(upstream Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		upstream: upstream,
		log:      log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.upstream.Ping(ctx); err != nil {
		h.log.Error("Upstream health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Upstream: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Upstream: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
