package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"

	"qrdesk/docs"
	"qrdesk/internal/app"
	"qrdesk/internal/config"
	handlers "qrdesk/internal/http/handler"
	"qrdesk/internal/http/middleware"
	"qrdesk/internal/logging"
	"qrdesk/internal/otel"
)

// @title qrdesk command API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, logging.LoadLocation(cfg.Timezone))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("tracing_init_failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Command service plus the optional history database and export archive
	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error("startup_failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	prom, err := middleware.NewPrometheusMiddleware(a.Registry)
	if err != nil {
		log.Error("startup_failed", "error", err)
		os.Exit(1)
	}

	srv := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	srv.Use(middleware.RequestID())
	srv.Use(otelfiber.Middleware())
	// JSON Logger middleware for structured request logs
	srv.Use(middleware.Logger(log))
	srv.Use(prom.Handler())
	// Only the desktop shell's origins may drive the loopback API from a browser
	srv.Use(middleware.Origin(cfg.AllowedOrigins))
	srv.Use(middleware.CORS(cfg.AllowedOrigins))

	deps := handlers.RouteDeps{Commands: a.Commands, Gatherer: a.Registry}
	if a.DB != nil {
		deps.DB = a.DB
	}
	handlers.RegisterRoutes(srv, deps)

	// Swagger UI with dynamic host and scheme
	srv.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		_ = srv.ShutdownWithTimeout(5 * time.Second)
	}()

	log.Info("server_starting", "addr", cfg.Addr(), "allowed_origins", cfg.AllowedOrigins)
	if err := srv.Listen(cfg.Addr()); err != nil {
		log.Error("server_failed", "error", err)
	}
}
