// BlogHub | 2026
// handler.go

package admin

import (
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/bloghub-dev/bloghub/internal/core"
	"github.com/bloghub-dev/bloghub/internal/middleware"
)

// Handler exposes operational stats to admin-role users: connection
// pool pressure, redis pool state and runtime numbers.
type Handler struct {
	db    *core.Database
	redis *core.Redis
}

func NewHandler(db *core.Database, redis *core.Redis) *Handler {
	return &Handler{db: db, redis: redis}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/stats", h.Stats)
		r.Get("/stats/db", h.DBStats)
		r.Get("/stats/redis", h.RedisStats)
		r.Get("/stats/runtime", h.RuntimeStats)
	})
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, "stats", map[string]any{
		"database": h.dbStats(),
		"redis":    h.redisStats(),
		"runtime":  runtimeStats(),
	})
}

func (h *Handler) DBStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, "database stats", h.dbStats())
}

func (h *Handler) RedisStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, "redis stats", h.redisStats())
}

func (h *Handler) RuntimeStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, "runtime stats", runtimeStats())
}

func (h *Handler) dbStats() map[string]any {
	stats := h.db.Stats()
	return map[string]any{
		"open_connections":    stats.OpenConnections,
		"in_use":              stats.InUse,
		"idle":                stats.Idle,
		"wait_count":          stats.WaitCount,
		"wait_duration_ms":    stats.WaitDuration.Milliseconds(),
		"max_open_connection": stats.MaxOpenConnections,
	}
}

func (h *Handler) redisStats() map[string]any {
	stats := h.redis.PoolStats()
	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

func runtimeStats() map[string]any {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]any{
		"goroutines":     runtime.NumGoroutine(),
		"heap_alloc_mb":  m.HeapAlloc / 1024 / 1024,
		"heap_sys_mb":    m.HeapSys / 1024 / 1024,
		"num_gc":         m.NumGC,
		"gc_pause_total": m.PauseTotalNs,
	}
}
