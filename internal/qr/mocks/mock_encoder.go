package mocks

import "github.com/stretchr/testify/mock"

type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(payload string) (string, error) {
	args := m.Called(payload)
	return args.String(0), args.Error(1)
}
