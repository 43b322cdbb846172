package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"qrdesk/internal/http/middleware"
	"qrdesk/internal/service"
)

// RouteDeps are the collaborators the routes are wired to. DB and Gatherer may be nil.
type RouteDeps struct {
	Commands service.CommandService
	DB       Pinger
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches the command API to the provided Fiber app.
// Every POST route only accepts application/json bodies.
func RegisterRoutes(app *fiber.App, d RouteDeps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", Liveness())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	cmd := app.Group("/commands", middleware.RequireJSON())
	cmd.Post("/greet", Greet(d.Commands))
	cmd.Post("/generate_qrcode", GenerateQRCode(d.Commands))
	cmd.Get("/get_downloads_path", GetDownloadsPath(d.Commands))
	cmd.Post("/open_downloads_folder", OpenDownloadsFolder(d.Commands))
	cmd.Post("/validate_url", ValidateURL(d.Commands))

	app.Post("/exports", middleware.RequireJSON(), ExportQRCode(d.Commands))
	app.Get("/exports", ListExports(d.Commands))
}
