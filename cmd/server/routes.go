package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/HammerMeetNail/plantcare/internal/assets"
	"github.com/HammerMeetNail/plantcare/internal/config"
	"github.com/HammerMeetNail/plantcare/internal/database"
	"github.com/HammerMeetNail/plantcare/internal/handlers"
	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/middleware"
	"github.com/HammerMeetNail/plantcare/internal/services"
)

type routerDeps struct {
	cfg      *config.Config
	logger   *logging.Logger
	advisor  services.AdvisorServiceInterface
	pages    *handlers.PageHandler
	manifest *assets.Manifest
	redis    *database.RedisDB // nil when redis is disabled
}

func newRouter(d routerDeps) http.Handler {
	var (
		redisClient *redis.Client
		health      *handlers.HealthHandler
	)
	if d.redis != nil {
		redisClient = d.redis.Client
		health = handlers.NewHealthHandler(d.redis)
	} else {
		health = handlers.NewHealthHandler(nil)
	}

	var hashed middleware.HashedAssets
	if d.manifest != nil {
		hashed = d.manifest
	}

	recommendHandler := handlers.NewRecommendHandler(d.advisor, d.logger)

	csrf := middleware.NewCSRFMiddleware(d.cfg.Server.Secure)
	limiter := middleware.NewRateLimiter(redisClient, d.cfg.RateLimit.Requests, d.cfg.RateLimit.Window, "ratelimit:recommend", d.logger)
	limited := func(h http.HandlerFunc) http.Handler { return limiter.Limit(h) }
	form := func(h http.Handler) http.Handler { return csrf.Protect(h) }

	mux := http.NewServeMux()

	// Health endpoints (no rate limit)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)
	mux.Handle("GET /metrics", promhttp.Handler())

	// JSON API
	mux.Handle("POST /api/nourishment", limited(recommendHandler.Nourish))
	mux.Handle("POST /api/care-plan", limited(recommendHandler.CarePlan))
	mux.HandleFunc("GET /api/options", recommendHandler.Options)
	mux.HandleFunc("GET /api/rules", recommendHandler.Rules)

	// HTML forms
	mux.Handle("GET /{$}", form(http.HandlerFunc(d.pages.Nourishment)))
	mux.Handle("POST /nourishment", form(limited(d.pages.SubmitNourishment)))
	mux.Handle("GET /care-plan", form(http.HandlerFunc(d.pages.CarePlan)))
	mux.Handle("POST /care-plan", form(limited(d.pages.SubmitCarePlan)))

	fs := http.FileServer(http.Dir(d.cfg.Web.StaticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("GET /", d.pages.NotFound)

	// Build middleware chain (order matters: outermost last)
	var handler http.Handler = mux
	handler = middleware.NewCacheControl(hashed).Apply(handler)
	handler = middleware.NewCompress().Apply(handler)
	handler = middleware.NewSecurityHeaders(d.cfg.Server.Secure).Apply(handler)
	handler = middleware.NewRequestLogger(d.logger).Apply(handler)
	return handler
}
