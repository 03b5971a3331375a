// Package api wires the dashboard HTTP surface: middleware, CORS, rate
// limiting, swagger docs, and the /api/v1 routes.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/hoopstats-data/internal/api/handler"
	"github.com/albapepper/hoopstats-data/internal/cache"
	"github.com/albapepper/hoopstats-data/internal/config"
	"github.com/albapepper/hoopstats-data/internal/db"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(conn *db.Conn, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Debug {
		r.Use(LogMiddleware(logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(conn, appCache, cfg, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/players", h.ListPlayers)
		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/", h.GetPlayer)
			r.Get("/games", h.GetRecentGames)
			r.Get("/seasons", h.GetSeasonAverages)
			r.Get("/career", h.GetCareer)
			r.Get("/highs", h.GetCareerHighs)
			r.Get("/splits/{kind}", h.GetSplits)
		})
	})

	return r
}
