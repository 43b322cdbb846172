package mocks

import (
	"context"

	"qrdesk/internal/model"
	"qrdesk/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockExportRepository struct {
	mock.Mock
}

func (m *MockExportRepository) Create(ctx context.Context, exp *model.Export) (*model.Export, error) {
	args := m.Called(ctx, exp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Export), args.Error(1)
}

func (m *MockExportRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Export], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Export]), args.Error(1)
}
