package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hagrid/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, history *handlers.HistoryHandler) {
	app.Get("/", handlers.Home)

	v1 := app.Group("/api").Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/history", history.List)
}
