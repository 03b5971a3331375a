// Package handler provides HTTP handlers for the dashboard API.
// Handlers call the dashboard store directly; there is no service layer.
// Responses are encoded once and served from the TTL cache afterwards.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/hoopstats-data/internal/api/respond"
	"github.com/albapepper/hoopstats-data/internal/cache"
	"github.com/albapepper/hoopstats-data/internal/config"
	"github.com/albapepper/hoopstats-data/internal/dashboard"
	"github.com/albapepper/hoopstats-data/internal/db"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	conn   *db.Conn
	store  *dashboard.Store
	cache  *cache.Cache
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(conn *db.Conn, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		conn:   conn,
		store:  dashboard.New(conn),
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and the docs location.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Hoopstats Dashboard API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"store":   h.conn.Dialect.Name,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies store connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.conn.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("Database health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveCached answers from the cache when it can; otherwise it runs load,
// encodes the value and caches the bytes under key.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, notFound string, load func(ctx context.Context) (any, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := load(r.Context())
	if errors.Is(err, dashboard.ErrNotFound) {
		respond.NotFound(w, notFound)
		return
	}
	if err != nil {
		h.logger.Error("Dashboard query failed", "key", key, "error", err)
		respond.Internal(w)
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Encode response", "key", key, "error", err)
		respond.Internal(w)
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// playerID reads the {playerID} path segment, writing a 400 when it is not
// a positive integer.
func playerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidID, "Player ID must be a positive integer")
		return 0, false
	}
	return id, true
}
