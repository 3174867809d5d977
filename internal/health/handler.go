// BlogHub | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloghub-dev/bloghub/internal/core"
)

const checkTimeout = 3 * time.Second

type Checker interface {
	Ping(ctx context.Context) error
}

// Handler serves liveness and readiness. Readiness flips off during
// shutdown so the load balancer drains us before the listener closes.
type Handler struct {
	db    Checker
	redis Checker
	ready atomic.Bool
}

func NewHandler(db, redis Checker) *Handler {
	h := &Handler{db: db, redis: redis}
	h.ready.Store(true)
	return h
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, "alive", nil)
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		core.JSONErrorStatus(
			w,
			http.StatusServiceUnavailable,
			"shutting down",
		)
		return
	}

	checks, healthy := h.runChecks(r.Context())
	if !healthy {
		core.JSONErrorStatus(w, http.StatusServiceUnavailable, "not ready")
		return
	}

	core.OK(w, "ready", checks)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.runChecks(r.Context())
	if !healthy {
		core.JSONErrorStatus(w, http.StatusServiceUnavailable, "degraded")
		return
	}

	core.OK(w, "healthy", checks)
}

func (h *Handler) runChecks(ctx context.Context) (map[string]string, bool) {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	checks := make(map[string]string, 2)
	healthy := true

	if err := h.db.Ping(checkCtx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if err := h.redis.Ping(checkCtx); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	return checks, healthy
}
