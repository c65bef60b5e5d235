package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Stake99/travel-planner-sub000/internal/activity"
	httpapi "github.com/Stake99/travel-planner-sub000/internal/api/http"
	"github.com/Stake99/travel-planner-sub000/internal/cache"
	"github.com/Stake99/travel-planner-sub000/internal/config"
	"github.com/Stake99/travel-planner-sub000/internal/forecast"
	"github.com/Stake99/travel-planner-sub000/internal/forecast/providers"
	"github.com/Stake99/travel-planner-sub000/internal/metrics"
	"github.com/Stake99/travel-planner-sub000/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Forecast cache with its background sweep.
	forecastCache := cache.New[forecast.ForecastResult](cfg.CacheSweepInterval)
	defer forecastCache.Close()

	// Metrics sink consumed by the pipeline, exposed read-only over HTTP.
	counters := metrics.NewCounters()

	// Provider with resilience (rate limit + backoff + circuit breaker).
	provider := providers.NewOpenMeteoProvider(httpClient, cfg.ForecastBaseURL, cfg.ProviderRPS, cfg.ProviderBurst)

	// Core cache-aside service and the recommendation pipeline on top of it.
	forecasts := forecast.NewService(forecastCache, provider, cfg.CacheTTL, counters)
	recommender := activity.NewRecommender(forecasts, counters)

	// Scheduler that keeps configured coordinates warm in the cache.
	sched := scheduler.New(cfg.PrewarmCoords, cfg.PrewarmDays, cfg.PrewarmInterval, forecasts)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "travel-planner",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "travel-planner",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, forecasts, recommender, counters)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
