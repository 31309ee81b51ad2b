// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"apify-workers/internal/api"
	"apify-workers/internal/common/apify"
	"apify-workers/internal/common/cache"
	"apify-workers/internal/common/config"
	"apify-workers/internal/common/gemini"
	"apify-workers/internal/common/logger"
	"apify-workers/internal/intent"
	"apify-workers/internal/scrapers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting server", map[string]interface{}{
		"name":        cfg.App.Name,
		"environment": cfg.App.Environment,
		"addr":        cfg.Server.Addr(),
	})

	if cfg.Apify.Token == "" {
		log.Warn("no Apify token configured; every scraper run will fail until one is supplied per request", nil)
	}

	runCache := cache.New(cfg.Redis)
	if runCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := runCache.Ping(ctx); err != nil {
			log.Warn("run cache unreachable, continuing without it", map[string]interface{}{
				"error": err.Error(),
			})
			runCache = nil
		}
		cancel()
		defer runCache.Close()
	}

	platform := apify.NewClient(cfg.Apify)
	registry := scrapers.NewRegistry(platform, runCache, cfg.Apify, log)

	// The chat path degrades when no model key is present; direct scraper
	// invocations keep working.
	var resolver *intent.Resolver
	if cfg.Gemini.APIKey != "" {
		resolver = intent.NewResolver(gemini.NewClient(cfg.Gemini), log)
	} else {
		log.Warn("no Gemini key configured; chat endpoint disabled", nil)
	}
	dispatcher := intent.NewDispatcher(registry, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(registry, resolver, dispatcher, log)

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
