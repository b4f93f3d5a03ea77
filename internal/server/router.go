package server

import (
	"net/http"

	"houseprice/internal/config"
	"houseprice/internal/handler"
	"houseprice/internal/metrics"
	"houseprice/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options wires handlers and middleware into the router
type Options struct {
	Server      config.ServerConfig
	MetricsPath string
	Metrics     *metrics.Metrics // nil disables /metrics
	Predict     *handler.PredictHandler
	Health      *handler.HealthHandler
	Static      func(router *gin.Engine) // serves the frontend, may be nil
}

// NewRouter builds the gin engine
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.HTTPLogger())
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(cors.New(corsConfig(opts.Server)))

	router.GET("/health", opts.Health.Health)
	router.GET("/version", opts.Health.Version)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(opts.Metrics.Handler()))
	}

	router.POST("/predict", opts.Predict.Predict)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/predict", opts.Predict.Predict)
	}

	if opts.Static != nil {
		opts.Static(router)
	} else {
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
		})
	}

	return router
}

func corsConfig(cfg config.ServerConfig) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = cfg.AllowedMethods
	corsConfig.AllowHeaders = cfg.AllowedHeaders
	corsConfig.ExposeHeaders = []string{middleware.HeaderRequestID}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
			return corsConfig
		}
	}
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	return corsConfig
}
