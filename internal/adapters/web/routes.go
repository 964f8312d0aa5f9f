package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	app.Get("/healthz", handlers.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/platforms", handlers.Platforms)
	api.Get("/content-types", handlers.ContentTypes)
	api.Get("/content-types/:type", handlers.ContentType)
	api.Post("/share/:type", rateLimiter.Middleware(), handlers.Share)

	// HTML preview of the local posts, e.g. /share/music/preview?title=Digital+Dreams&artist_name=Nova
	app.Get("/share/:type/preview", rateLimiter.Middleware(), handlers.Preview)

	// Same contract as the hosted generator
	app.Post("/social/generate-universal-content", rateLimiter.Middleware(), handlers.GenerateUniversal)
}
