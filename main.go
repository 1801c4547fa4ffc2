// File: openinghours/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openinghours/config"
	"openinghours/cron"
	"openinghours/database"
	venueRepo "openinghours/database/repository/venue"
	"openinghours/handlers"
	"openinghours/middleware"
	"openinghours/routes"
	"openinghours/services/venue"
	"openinghours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := database.InitDB(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	repo := venueRepo.NewMongoVenueRepo(mongoClient, cfg.DatabaseName)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("main: failed to ensure venue indexes", zap.Error(err))
	}

	// The cache is optional; without Redis every read goes to MongoDB.
	var cache venue.VenueCache
	redisClient, err := utils.InitCache(cfg)
	if err != nil {
		logger.Warn("main: venue cache disabled", zap.Error(err))
	} else {
		cache = venue.NewRedisVenueCache(redisClient, cfg.VenueCacheTTL)
	}

	venueService := venue.NewVenueService(repo, cache, logger)
	venueHandler := handlers.NewVenueHandler(venueService, logger, cfg.DefaultTimeFormat)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	health := utils.NewHealthMonitor(redisClient, mongoClient)
	health.Start(ctx, 30*time.Second)

	pruner, err := cron.StartAlterationPruner(cfg.PruneSchedule, venueService, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(venueHandler, health))

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	<-pruner.Stop().Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
