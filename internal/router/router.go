package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/tanishkamehta000/food-truck-tracker/internal/handler"
	"github.com/tanishkamehta000/food-truck-tracker/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Report *handler.ReportHandler
	Marker *handler.MarkerHandler
	Policy *handler.PolicyHandler
	Admin  *handler.AdminHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Operational endpoints (no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	reportLimiter := middleware.NewReportRateLimiter()
	markerLimiter := middleware.NewMarkerRateLimiter()
	statsLimiter := middleware.NewStatsRateLimiter()

	api := app.Group("/api")

	// Reporting pipeline
	api.Post("/reports", h.Report.Submit, reportLimiter.Handler())

	// Map projection
	api.Get("/markers", h.Marker.GetMarkers, markerLimiter.Handler())
	api.Get("/trucks/:name", h.Marker.GetTruck, markerLimiter.Handler())

	// Policy
	api.Get("/policy", h.Policy.Get)

	// Stats
	api.Get("/stats", h.Stats.GetStats, statsLimiter.Handler())

	// Administrative surface
	admin := api.Group("/admin")
	admin.Put("/policy", h.Policy.Update)
	admin.Post("/sweep", h.Admin.Sweep)
	admin.Delete("/sightings", h.Admin.DeleteTruck)
}
