// Package app assembles the command service from configuration. Both the
// HTTP command API and qrctl build on it.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"qrdesk/internal/config"
	"qrdesk/internal/database"
	"qrdesk/internal/database/migration"
	"qrdesk/internal/platform"
	"qrdesk/internal/qr"
	"qrdesk/internal/repository"
	"qrdesk/internal/repository/postgres"
	"qrdesk/internal/service"
	"qrdesk/internal/storage"
)

// App holds the assembled command service and the resources it owns.
type App struct {
	Commands service.CommandService
	Registry *prometheus.Registry
	Logger   *slog.Logger

	// DB is nil when export history is disabled.
	DB *sql.DB
}

var openHistory = database.OpenHistory

// Build wires the command service. History and archive backends are connected
// only when configured; a configured backend that cannot be reached is an error.
func Build(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register command metrics: %w", err)
	}

	a := &App{Registry: reg, Logger: log}

	var history repository.ExportRepository
	if cfg.Database.Enabled() {
		db, err := openHistory(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to history store: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return nil, err
		}
		a.DB = db
		history = postgres.NewExportPostgres(db)
	}

	var archive storage.Storage
	if cfg.MinIO.Enabled() {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
	}

	log.InfoContext(ctx, "backends_configured",
		"history_enabled", history != nil,
		"archive_enabled", archive != nil,
	)

	a.Commands = service.NewCommandService(service.Deps{
		Encoder: qr.NewSVGEncoder(qr.Options{
			MinDimension:    cfg.QR.MinDimension,
			QuietZone:       cfg.QR.QuietZone,
			DarkColor:       cfg.QR.DarkColor,
			LightColor:      cfg.QR.LightColor,
			MaxPayloadBytes: cfg.QR.MaxPayloadBytes,
		}),
		Home:             platform.OS{},
		WorkDir:          platform.OS{},
		Launcher:         platform.OS{},
		Files:            platform.OS{},
		Archive:          archive,
		History:          history,
		Metrics:          metrics,
		Logger:           log,
		DownloadsDirName: cfg.Paths.DownloadsDirName,
	})
	return a, nil
}

// Close releases the database, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
