package mocks

import (
	"context"

	"qrdesk/internal/model"
	"qrdesk/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCommandService struct {
	mock.Mock
}

func (m *MockCommandService) Greet(ctx context.Context, name string) string {
	args := m.Called(ctx, name)
	return args.String(0)
}

func (m *MockCommandService) GenerateQRCode(ctx context.Context, payload string) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockCommandService) GetDownloadsPath(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockCommandService) OpenDownloadsFolder(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCommandService) ValidateURL(ctx context.Context, input string) model.URLCheck {
	args := m.Called(ctx, input)
	return args.Get(0).(model.URLCheck)
}

func (m *MockCommandService) ExportQRCode(ctx context.Context, payload string) (*model.Export, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Export), args.Error(1)
}

func (m *MockCommandService) ListExports(ctx context.Context, limit, offset int) (*service.ExportListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportListResult), args.Error(1)
}
