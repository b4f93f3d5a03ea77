package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"houseprice/internal/config"
	"houseprice/internal/handler"
	"houseprice/internal/inference"
	"houseprice/internal/logger"
	"houseprice/internal/metrics"
	"houseprice/internal/model"
	"houseprice/internal/repository"
	"houseprice/internal/server"
	"houseprice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const serviceName = "house-price-predictor"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, serviceName); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logger")
	}

	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("House Price Predictor")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the model once; every request shares it read-only
	regressor, err := inference.Load(cfg.Model.Path, model.FeatureOrder[:])
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.Path).Msg("Failed to load model artifact")
	}
	log.Info().
		Str("path", cfg.Model.Path).
		Str("model_version", regressor.Version()).
		Strs("feature_names", regressor.FeatureNames()).
		Msg("Model loaded")

	// Optional audit log
	var (
		recorder service.PredictionRecorder
		auditLog handler.Pinger
	)
	if cfg.PostgreSQL.Enabled {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer repo.Close()

		recorder = repo
		auditLog = repo
		log.Info().Msg("Connected to PostgreSQL, prediction audit log enabled")
	} else {
		log.Info().Msg("Prediction audit log disabled, set DATABASE_URL to enable it")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Initialize services and handlers
	predictionService := service.NewPredictionService(regressor, recorder, cfg.PostgreSQL.AuditTimeout)
	predictHandler := handler.NewPredictHandler(predictionService, m)
	healthHandler := handler.NewHealthHandler(handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}, predictionService.ModelVersion(), auditLog)

	router := server.NewRouter(server.Options{
		Server:      cfg.Server,
		MetricsPath: cfg.Metrics.Path,
		Metrics:     m,
		Predict:     predictHandler,
		Health:      healthHandler,
		// Implemented in embed.go (production) or static_dev.go (development)
		Static: setupStaticFiles,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	log.Info().
		Str("addr", srv.Addr).
		Strs("cors_origins", cfg.Server.AllowedOrigins).
		Msgf("Starting server, web UI at http://localhost:%d", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}

	log.Info().Msg("Server stopped")
}
