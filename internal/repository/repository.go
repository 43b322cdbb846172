// Package repository contains data access abstractions for the export history.
// Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"

	"qrdesk/internal/model"
)

// ExportRepository persists the history of QR codes exported to the downloads directory.
// No business logic here, strictly persistence operations.
type ExportRepository interface {
	// Create inserts a new export record and returns the stored row.
	Create(ctx context.Context, exp *model.Export) (*model.Export, error)

	// List returns a page of exports, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Export], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
