package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"qrdesk/internal/model"
	"qrdesk/internal/platform"
	"qrdesk/internal/qr"
	"qrdesk/internal/repository"
	"qrdesk/internal/storage"
)

// GreetingSuffix ends every greeting returned by Greet.
const GreetingSuffix = "! You've been greeted from Go!"

// ExportListResult is the service-level DTO for paginated exports.
type ExportListResult struct {
	Items []model.Export `json:"data"`
	Total int            `json:"total"`
}

// CommandService is the command surface the desktop front end calls.
// Every call is independent; implementations hold no per-call state.
type CommandService interface {
	// Greet returns a fixed-template greeting for name. It never fails.
	Greet(ctx context.Context, name string) string

	// GenerateQRCode renders payload as an SVG QR code at error-correction level H.
	// Failures are *qr.EncodingError; oversized payloads also match qr.ErrPayloadTooLarge.
	GenerateQRCode(ctx context.Context, payload string) (string, error)

	// GetDownloadsPath returns <home>/Downloads, else the working directory, else ".".
	// The directory is not required to exist.
	GetDownloadsPath(ctx context.Context) string

	// OpenDownloadsFolder opens <home>/Downloads (or "." without a home directory)
	// in the OS file browser. Failures are *LaunchFailedError.
	OpenDownloadsFolder(ctx context.Context) error

	// ValidateURL grades input the way the front end's URL field does.
	ValidateURL(ctx context.Context, input string) model.URLCheck

	// ExportQRCode writes the SVG for payload to the downloads directory,
	// then archives and records it when those backends are configured.
	ExportQRCode(ctx context.Context, payload string) (*model.Export, error)

	// ListExports returns recorded exports, newest first.
	ListExports(ctx context.Context, limit, offset int) (*ExportListResult, error)
}

// Deps are the collaborators of the command service. Nil OS capabilities default to platform.OS;
// Archive, History and Metrics are optional.
type Deps struct {
	Encoder          qr.Encoder
	Home             platform.HomeDirResolver
	WorkDir          platform.WorkingDirResolver
	Launcher         platform.Launcher
	Files            platform.FileWriter
	Archive          storage.Storage
	History          repository.ExportRepository
	Metrics          *Metrics
	Logger           *slog.Logger
	DownloadsDirName string
	Now              func() time.Time
}

// commandService is a concrete implementation of CommandService.
type commandService struct {
	encoder  qr.Encoder
	home     platform.HomeDirResolver
	workDir  platform.WorkingDirResolver
	launcher platform.Launcher
	files    platform.FileWriter
	archive  storage.Storage
	history  repository.ExportRepository
	metrics  *Metrics
	log      *slog.Logger
	dirName  string
	now      func() time.Time
	tracer   trace.Tracer
}

// NewCommandService constructs a new CommandService.
func NewCommandService(d Deps) CommandService {
	s := &commandService{
		encoder:  d.Encoder,
		home:     d.Home,
		workDir:  d.WorkDir,
		launcher: d.Launcher,
		files:    d.Files,
		archive:  d.Archive,
		history:  d.History,
		metrics:  d.Metrics,
		log:      d.Logger,
		dirName:  d.DownloadsDirName,
		now:      d.Now,
		tracer:   otel.Tracer("qrdesk/internal/service"),
	}
	if s.encoder == nil {
		s.encoder = qr.NewSVGEncoder(qr.DefaultOptions())
	}
	if s.home == nil {
		s.home = platform.OS{}
	}
	if s.workDir == nil {
		s.workDir = platform.OS{}
	}
	if s.launcher == nil {
		s.launcher = platform.OS{}
	}
	if s.files == nil {
		s.files = platform.OS{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.dirName == "" {
		s.dirName = "Downloads"
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *commandService) Greet(ctx context.Context, name string) string {
	return "Hello, " + name + GreetingSuffix
}

func (s *commandService) GenerateQRCode(ctx context.Context, payload string) (string, error) {
	_, span := s.tracer.Start(ctx, "CommandService.GenerateQRCode",
		trace.WithAttributes(attribute.Int("qr.payload_bytes", len(payload))))
	defer span.End()

	out, err := s.encode(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode failed")
		return "", err
	}
	return out, nil
}

func (s *commandService) encode(payload string) (string, error) {
	out, err := s.encoder.Encode(payload)
	switch {
	case err == nil:
		s.metrics.encoded("ok")
	case errors.Is(err, qr.ErrPayloadTooLarge):
		s.metrics.encoded("too_large")
	default:
		s.metrics.encoded("error")
	}
	return out, err
}

// homeDownloads is <home>/<dirName>, or false when the home directory is unknown.
func (s *commandService) homeDownloads() (string, bool) {
	home, err := s.home.HomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, s.dirName), true
}

func (s *commandService) GetDownloadsPath(ctx context.Context) string {
	if p, ok := s.homeDownloads(); ok {
		return p
	}
	if wd, err := s.workDir.WorkingDir(); err == nil && wd != "" {
		return wd
	}
	return "."
}

func (s *commandService) OpenDownloadsFolder(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "CommandService.OpenDownloadsFolder")
	defer span.End()

	path, ok := s.homeDownloads()
	if !ok {
		path = "."
	}
	span.SetAttributes(attribute.String("folder.path", path), attribute.Bool("folder.fallback", !ok))

	if err := s.launcher.Open(path); err != nil {
		s.metrics.launched("error")
		launchErr := &LaunchFailedError{Path: path, Fallback: !ok, Cause: err}
		span.RecordError(launchErr)
		span.SetStatus(codes.Error, "launch failed")
		s.log.ErrorContext(ctx, "open_folder_failed", "error", err, "path", path, "fallback", !ok)
		return launchErr
	}
	s.metrics.launched("ok")
	return nil
}

// maxExportNameAttempts bounds the suffixes tried for one millisecond.
const maxExportNameAttempts = 100

// exportFilename matches the name the front end used for browser downloads.
// Later exports in the same millisecond get "-1", "-2", ... before the extension.
func exportFilename(t time.Time, n int) string {
	if n == 0 {
		return fmt.Sprintf("qrcode-%d.svg", t.UnixMilli())
	}
	return fmt.Sprintf("qrcode-%d-%d.svg", t.UnixMilli(), n)
}
