// Package api exposes the adapter registry and intent resolver over HTTP.
// It is strictly a consumer of the scraper result and intent contracts;
// all rendering beyond JSON/CSV belongs to the clients.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"apify-workers/internal/common/logger"
	"apify-workers/internal/intent"
	"apify-workers/internal/scrapers"
)

// Router wires HTTP handlers over the pipeline components. The resolver
// may be nil when no model key is configured; the chat path degrades
// instead of crashing.
type Router struct {
	registry   *scrapers.Registry
	resolver   *intent.Resolver
	dispatcher *intent.Dispatcher
	log        logger.Logger
}

func NewRouter(registry *scrapers.Registry, resolver *intent.Resolver, dispatcher *intent.Dispatcher, log logger.Logger) *gin.Engine {
	r := &Router{
		registry:   registry,
		resolver:   resolver,
		dispatcher: dispatcher,
		log:        log,
	}

	router := gin.New()
	router.Use(gin.Recovery(), r.requestID(), r.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/scrapers", r.listScrapers)
		api.POST("/scrape/:name", r.scrape)
		api.POST("/chat", r.chat)
	}

	return router
}

// requestID tags every request with a uuid for log correlation.
func (r *Router) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (r *Router) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		r.log.Info("request handled", map[string]interface{}{
			"requestId": c.GetString("requestID"),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
		})
	}
}
