package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HammerMeetNail/plantcare/internal/assets"
	"github.com/HammerMeetNail/plantcare/internal/config"
	"github.com/HammerMeetNail/plantcare/internal/database"
	"github.com/HammerMeetNail/plantcare/internal/handlers"
	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logging.ParseLevel(cfg.Log.Level)
	logger := logging.New().SetFormat(cfg.Log.Format, os.Stdout).SetLevel(level)
	logging.Default.SetFormat(cfg.Log.Format, os.Stdout).SetLevel(level)

	logger.Info("Starting plant care server...", map[string]interface{}{
		"env": cfg.Server.Environment,
	})

	var redisDB *database.RedisDB
	if cfg.Redis.Enabled {
		logger.Info("Connecting to Redis", map[string]interface{}{
			"addr": cfg.Redis.Addr(),
		})
		redisDB, err = database.NewRedisDB(context.Background(), cfg.Redis)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisDB.Close() }()
		logger.Info("Connected to Redis")
	} else {
		logger.Warn("Redis disabled; rate limiting is off")
	}

	manifest := assets.NewManifest(cfg.Web.StaticDir)
	if err := manifest.Load(); err != nil {
		return fmt.Errorf("loading asset manifest: %w", err)
	}

	advisor := services.NewAdvisorService(logger)
	pageHandler, err := handlers.NewPageHandler(cfg.Web.TemplatesDir, advisor, manifest, logger)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	handler := newRouter(routerDeps{
		cfg:      cfg,
		logger:   logger,
		advisor:  advisor,
		pages:    pageHandler,
		manifest: manifest,
		redis:    redisDB,
	})

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}
