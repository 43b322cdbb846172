package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockHomeDirResolver struct {
	mock.Mock
}

func (m *MockHomeDirResolver) HomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

type MockWorkingDirResolver struct {
	mock.Mock
}

func (m *MockWorkingDirResolver) WorkingDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

type MockLauncher struct {
	mock.Mock
}

func (m *MockLauncher) Open(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(path string, data []byte) error {
	args := m.Called(path, data)
	return args.Error(0)
}

func (m *MockFileWriter) CreateFile(path string, data []byte) error {
	args := m.Called(path, data)
	return args.Error(0)
}
