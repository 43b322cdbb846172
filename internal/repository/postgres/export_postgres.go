package postgres

import (
	"context"
	"database/sql"

	"qrdesk/internal/model"
	"qrdesk/internal/repository"
)

// ExportPostgres is a PostgreSQL implementation of repository.ExportRepository.
type ExportPostgres struct {
	db *sql.DB
}

// NewExportPostgres creates a new ExportPostgres repository.
func NewExportPostgres(db *sql.DB) *ExportPostgres {
	return &ExportPostgres{db: db}
}

var _ repository.ExportRepository = (*ExportPostgres)(nil)

// Create inserts a new export row and returns the stored record.
func (r *ExportPostgres) Create(ctx context.Context, exp *model.Export) (*model.Export, error) {
	const q = `
		INSERT INTO qr_exports (id, filename, path, size, archive_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, path, size, archive_key, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		exp.ID,
		exp.Filename,
		exp.Path,
		exp.Size,
		exp.ArchiveKey,
		exp.CreatedAt,
	)
	var out model.Export
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.Path,
		&out.Size,
		&out.ArchiveKey,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns exports using LIMIT/OFFSET pagination and a total count.
func (r *ExportPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Export], error) {
	const qCount = `SELECT COUNT(*) FROM qr_exports`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, filename, path, size, archive_key, created_at
		FROM qr_exports
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Export, 0)
	for rows.Next() {
		var e model.Export
		if err := rows.Scan(
			&e.ID,
			&e.Filename,
			&e.Path,
			&e.Size,
			&e.ArchiveKey,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Export]{
		Items: items,
		Total: total,
	}, nil
}
