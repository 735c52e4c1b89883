package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"whalestreet_ai_server/internal/ai"
)

// MockProvider is a mock type for the ai.Provider type
type MockProvider struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (_m *MockProvider) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.String(0)
	}

	return r0
}

// Complete provides a mock function with given fields: ctx, req
func (_m *MockProvider) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	ret := _m.Called(ctx, req)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, ai.CompletionRequest) string); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.String(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, ai.CompletionRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockProvider creates a new instance of MockProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProvider {
	m := &MockProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ ai.Provider = (*MockProvider)(nil)
