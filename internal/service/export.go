package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"qrdesk/internal/model"
	"qrdesk/internal/repository"
	"qrdesk/internal/storage"
)

const (
	svgContentType = "image/svg+xml"
	archiveURLTTL  = 15 * time.Minute
)

func (s *commandService) ExportQRCode(ctx context.Context, payload string) (*model.Export, error) {
	ctx, span := s.tracer.Start(ctx, "CommandService.ExportQRCode")
	defer span.End()

	markup, err := s.encode(payload)
	if err != nil {
		s.metrics.exported("error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode failed")
		return nil, err
	}

	now := s.now()
	filename, path, err := s.writeExport(ctx, now, []byte(markup))
	if err != nil {
		s.metrics.exported("error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return nil, fmt.Errorf("write export: %w", err)
	}
	span.SetAttributes(attribute.String("export.path", path))

	exp := &model.Export{
		ID:        uuid.NewString(),
		Filename:  filename,
		Path:      path,
		Size:      int64(len(markup)),
		CreatedAt: now.UTC(),
	}

	// The local file is the deliverable; archive and history are best effort.
	if s.archive != nil {
		info, err := s.archive.Put(ctx, storage.ExportKey(filename), strings.NewReader(markup), storage.PutObjectOptions{
			Size:        exp.Size,
			ContentType: svgContentType,
			Metadata:    map[string]string{"export-id": exp.ID},
		})
		if err != nil {
			s.log.ErrorContext(ctx, "export_archive_failed", "error", err, "export_id", exp.ID, "filename", filename)
		} else {
			exp.ArchiveKey = info.Key
		}
	}

	if s.history != nil {
		stored, err := s.history.Create(ctx, exp)
		if err != nil {
			s.log.ErrorContext(ctx, "export_history_failed", "error", err, "export_id", exp.ID)
		} else {
			exp = stored
		}
	}

	s.metrics.exported("ok")
	s.log.InfoContext(ctx, "qrcode_exported", "export_id", exp.ID, "path", exp.Path, "size", exp.Size)
	return exp, nil
}

// writeExport creates a new file in the downloads directory. An existing file
// is never replaced.
func (s *commandService) writeExport(ctx context.Context, now time.Time, data []byte) (filename, path string, err error) {
	dir := s.GetDownloadsPath(ctx)
	for n := 0; n < maxExportNameAttempts; n++ {
		filename = exportFilename(now, n)
		path = filepath.Join(dir, filename)
		err = s.files.CreateFile(path, data)
		if !errors.Is(err, fs.ErrExist) {
			return filename, path, err
		}
	}
	return "", "", fmt.Errorf("no free name for %s after %d attempts: %w", exportFilename(now, 0), maxExportNameAttempts, err)
}

func (s *commandService) ListExports(ctx context.Context, limit, offset int) (*ExportListResult, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.history.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}

	if s.archive != nil {
		for i := range res.Items {
			s.presign(ctx, &res.Items[i])
		}
	}
	return &ExportListResult{Items: res.Items, Total: res.Total}, nil
}

// presign attaches a download link for archived exports. Failures leave the link empty.
func (s *commandService) presign(ctx context.Context, exp *model.Export) {
	if exp.ArchiveKey == "" {
		return
	}
	link, err := s.archive.PresignGet(ctx, exp.ArchiveKey, archiveURLTTL)
	if err != nil {
		s.log.ErrorContext(ctx, "export_presign_failed", "error", err, "export_id", exp.ID)
		return
	}
	exp.ArchiveURL = link
}
