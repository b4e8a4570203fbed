package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/tanishkamehta000/food-truck-tracker/internal/config"
	"github.com/tanishkamehta000/food-truck-tracker/internal/db"
	"github.com/tanishkamehta000/food-truck-tracker/internal/handler"
	"github.com/tanishkamehta000/food-truck-tracker/internal/middleware"
	"github.com/tanishkamehta000/food-truck-tracker/internal/repository"
	"github.com/tanishkamehta000/food-truck-tracker/internal/router"
	"github.com/tanishkamehta000/food-truck-tracker/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "food-truck-tracker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	sightings := repository.NewSightingRepo(pool)
	flags := repository.NewFlagRepo(pool)
	vendors := repository.NewVendorRepo(pool)

	policy := service.NewPolicyService(flags)
	policy.Refresh(ctx)

	matcher := service.NewMatcherService(sightings, cfg.SimilarityWindow, cfg.ProximityRadiusM)
	engine := service.NewVerificationEngine(sightings, vendors, policy, matcher, cache, cfg.QuorumThreshold)
	maps := service.NewMapService(sightings, cache)
	trucks := service.NewTruckService(sightings)
	retention := service.NewRetentionService(sightings, cache, cfg.RetentionWindow)
	admin := service.NewAdminService(sightings, cache)
	stats := service.NewStatsService(pool)

	watcher := service.NewPolicyWatcher(pool, policy, cfg.PolicyRefreshRate)
	go watcher.Start(ctx)

	sweeper := service.NewRetentionWorker(retention, cfg.SweepInterval)
	go sweeper.Start(ctx)
	defer sweeper.Stop()

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "Food Truck Tracker API",
		ServerHeader: "FoodTruckTracker",
	})

	router.Setup(app, &router.Handlers{
		Report: handler.NewReportHandler(engine, policy, vendors),
		Marker: handler.NewMarkerHandler(maps, trucks),
		Policy: handler.NewPolicyHandler(policy),
		Admin:  handler.NewAdminHandler(retention, admin),
		Stats:  handler.NewStatsHandler(stats),
		Health: handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Println("shutdown signal received, stopping server")
		if err := app.Shutdown(); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}()

	log.Printf("food truck tracker starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
