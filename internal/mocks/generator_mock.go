package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"whalestreet_ai_server/internal/studio"
	"whalestreet_ai_server/internal/types"
)

// MockGenerator is a mock type for the studio.Generator type
type MockGenerator struct {
	mock.Mock
}

// GenerateGameCode provides a mock function with given fields: ctx, gameIdea
func (_m *MockGenerator) GenerateGameCode(ctx context.Context, gameIdea string) (types.GameCode, error) {
	ret := _m.Called(ctx, gameIdea)

	var r0 types.GameCode
	if rf, ok := ret.Get(0).(func(context.Context, string) types.GameCode); ok {
		r0 = rf(ctx, gameIdea)
	} else {
		r0 = ret.Get(0).(types.GameCode)
	}

	return r0, ret.Error(1)
}

// ImproveGame provides a mock function with given fields: ctx, input
func (_m *MockGenerator) ImproveGame(ctx context.Context, input types.ImproveInput) (types.ImproveOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 types.ImproveOutput
	if rf, ok := ret.Get(0).(func(context.Context, types.ImproveInput) types.ImproveOutput); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Get(0).(types.ImproveOutput)
	}

	return r0, ret.Error(1)
}

// EnhancePrompt provides a mock function with given fields: ctx, originalPrompt
func (_m *MockGenerator) EnhancePrompt(ctx context.Context, originalPrompt string) (string, error) {
	ret := _m.Called(ctx, originalPrompt)
	return ret.String(0), ret.Error(1)
}

// GenerateGameBrief provides a mock function with given fields: ctx, input
func (_m *MockGenerator) GenerateGameBrief(ctx context.Context, input types.BriefInput) (string, error) {
	ret := _m.Called(ctx, input)
	return ret.String(0), ret.Error(1)
}

// NewMockGenerator creates a new instance of MockGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerator {
	m := &MockGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ studio.Generator = (*MockGenerator)(nil)
