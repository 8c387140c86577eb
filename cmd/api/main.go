package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchbook/config"
	httpHandler "pitchbook/internal/adapter/http/handler"
	pgStorage "pitchbook/internal/adapter/storage/postgres"
	redisStorage "pitchbook/internal/adapter/storage/redis"
	"pitchbook/internal/core/ports"
	"pitchbook/internal/service"
	"pitchbook/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting PitchBook webhook service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	endpointRepo := pgStorage.NewEndpointRepo(pool)
	deliveryRepo := pgStorage.NewDeliveryRepo(pool)
	scopeRepo := pgStorage.NewScopeRepo(pool)
	scopeCache := redisStorage.NewScopeNameCache(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	clock := service.NewSystemClock()

	// Initialize business services
	endpointSvc := service.NewEndpointService(endpointRepo, clock, log)
	processor := service.NewDeliveryProcessor(
		endpointRepo,
		deliveryRepo,
		sigSvc,
		&http.Client{},
		clock,
		service.ProcessorConfig{
			BatchSize:    cfg.Webhook.BatchSize,
			PollInterval: cfg.Webhook.PollInterval,
			ClaimLease:   cfg.Webhook.ClaimLease,
			UserAgent:    cfg.Webhook.UserAgent,
		},
		log,
	)
	dispatcherSvc := service.NewDispatcherService(endpointRepo, deliveryRepo, scopeRepo, scopeCache, processor, clock, log)
	deliverySvc := service.NewDeliveryService(deliveryRepo, processor, log)

	// Start the delivery processor loop
	processorCtx, stopProcessor := context.WithCancel(ctx)
	defer stopProcessor()
	go processor.Run(processorCtx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EndpointSvc:    endpointSvc,
		DeliverySvc:    deliverySvc,
		DispatcherSvc:  dispatcherSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Stop claiming new deliveries; in-flight dispatches finish on their own timeouts.
	stopProcessor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
